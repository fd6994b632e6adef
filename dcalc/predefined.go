package dcalc

// init populates the registry with the seven predefined algorithms
// (COMPONENT DESIGN §4.3 registry table) so it is fully populated before
// any analysis session can start, per §5's scheduling-model requirement.
func init() {
	RegisterDelayCalc("unit", newUnitCalc)
	RegisterDelayCalc("lumped_cap", newLumpedCapCalc)
	RegisterDelayCalc("dmp_ceff_elmore", newDmpCeffElmoreCalc)
	RegisterDelayCalc("dmp_ceff_two_pole", newDmpCeffTwoPoleCalc)
	RegisterDelayCalc("arnoldi", newArnoldiCalc)
	RegisterDelayCalc("ccs_ceff", newCcsCeffCalc)
	RegisterDelayCalc("prima", newPrimaCalc)
}
