package dem

import "fmt"

// Bit identifies one of the eight DTC status bits from the ISO 14229-1
// DTCStatusMask as tracked by the AUTOSAR Dem module.
type Bit uint8

const (
	TestFailed Bit = iota
	TestFailedThisOperationCycle
	PendingDTC
	ConfirmedDTC
	TestNotCompleteSinceLastClear
	TestFailedSinceLastClear
	TestNotCompletedThisOperationCycle
	WarningIndicatorRequested
)

// Mask returns the bitmask for b within the status byte.
func (b Bit) Mask() uint8 {
	return 1 << b
}

func (b Bit) String() string {
	if int(b) < len(bitDefinitions) {
		return bitDefinitions[b].Name
	}
	return fmt.Sprintf("unknownBit(%d)", uint8(b))
}

// Abbr returns the short acronym for the bit, eg. "TF" for TestFailed.
func (b Bit) Abbr() string {
	if int(b) < len(bitDefinitions) {
		return bitDefinitions[b].Abbr
	}
	return "?"
}

// BitDefinition describes the semantics of a single DTC status bit: what
// the bit means, how it reads in either state and under which conditions
// the Dem sets and clears it.
type BitDefinition struct {
	Bit             Bit
	Name            string   // shortName from the AUTOSAR Dem SWS
	Abbr            string   // compact display acronym
	Label           string   // human readable label
	Intro           string   // one-line meaning of the bit
	DescSet         string   // reading when the bit is 1
	DescClear       string   // reading when the bit is 0
	Detail          string   // background on how the Dem drives the bit
	SetConditions   []string // transitions 0 -> 1
	ClearConditions []string // transitions 1 -> 0
}

// Mask returns the bitmask for the definition's bit position.
func (d *BitDefinition) Mask() uint8 {
	return d.Bit.Mask()
}

var bitDefinitions = [8]BitDefinition{
	{
		Bit:       TestFailed,
		Name:      "testFailed",
		Abbr:      "TF",
		Label:     "Test Failed",
		Intro:     "the most recent test result for this DTC is failed",
		DescSet:   "the last completed test reported the fault as present",
		DescClear: "the last completed test did not report the fault",
		Detail: `The ECU cyclically runs the test for each configured error path. When
the most recent run of that test detects the fault, testFailed is set.
A set testFailed does not mean the DTC has been written to non-volatile
memory yet; storage only happens once pendingDTC or confirmedDTC is
set, which requires the fault to recur often or long enough to reach
the configured threshold. The bit falls back to 0 as soon as a test
passes again or the fault memory is cleared.`,
		SetConditions: []string{
			"the periodic test detects the failure condition, set immediately",
			"set the moment the fault occurs",
		},
		ClearConditions: []string{
			"the next test run completes without the failure condition",
			"Dem_ClearDTC clears the fault memory (UDS service 0x14, OBD service 0x04)",
			"Dem_ResetEventStatus resets the event status for this DTC",
		},
	},
	{
		Bit:       TestFailedThisOperationCycle,
		Name:      "testFailedThisOperationCycle",
		Abbr:      "TFTOC",
		Label:     "Test Failed This Operation Cycle",
		Intro:     "the test has failed at least once during the current operation cycle",
		DescSet:   "at least one fault was detected during the current operation cycle",
		DescClear: "no fault was detected during the current operation cycle",
		Detail: `Marks whether testFailed has been 1 at any point during the running
operation cycle. An operation cycle spans from the ECU waking up via
network management until it goes back to sleep; for ECUs without
network management it is bounded by terminal 15 on/off. A DTC with
testFailed = 0 but testFailedThisOperationCycle = 1 failed earlier in
the cycle and has since recovered.`,
		SetConditions: []string{
			"set immediately once testFailed has been 1 at any point in the cycle",
		},
		ClearConditions: []string{
			"the operation cycle ends or a new operation cycle starts",
			"Dem_ClearDTC clears the fault memory (UDS service 0x14, OBD service 0x04)",
		},
	},
	{
		Bit:       PendingDTC,
		Name:      "pendingDTC",
		Abbr:      "PDTC",
		Label:     "Pending DTC",
		Intro:     "the test failed in the current or the immediately preceding operation cycle",
		DescSet:   "at least one fault was detected in the current or the last completed operation cycle",
		DescClear: "no fault was detected in the current or the last completed operation cycle",
		Detail: `pendingDTC sits between testFailed and confirmedDTC. Some DTCs have
strict confirmation criteria that require the fault to show up over
several operation cycles; pendingDTC tracks the candidate in the
meantime and already causes the DTC to be stored. If the fault stays
away for two consecutive operation cycles after the one in which it
occurred, pendingDTC returns to 0.`,
		SetConditions: []string{
			"testFailed was set in the current or the previous operation cycle",
			"updated when the test for the current cycle completes",
		},
		ClearConditions: []string{
			"two consecutive operation cycles complete without a failed test",
			"Dem_ClearDTC clears the fault memory (UDS service 0x14, OBD service 0x04)",
		},
	},
	{
		Bit:       ConfirmedDTC,
		Name:      "confirmedDTC",
		Abbr:      "CDTC",
		Label:     "Confirmed DTC",
		Intro:     "the fault met the confirmation threshold and is stored in non-volatile memory",
		DescSet:   "a historic fault exists, stored in non-volatile memory",
		DescClear: "no historic fault is stored",
		Detail: `confirmedDTC = 1 means the DTC satisfied its confirmation criteria at
some point and was written to the ECU's non-volatile memory (EEPROM or
FEE). It does not imply the fault is still present: confirmedDTC = 1
with testFailed = 0 describes a fault that has since disappeared. The
only way back to 0 is clearing the fault memory, UDS service 0x14 or
OBD service 0x04, or ageing/displacement of the stored event.`,
		SetConditions: []string{
			"the fault is confirmed and the event data is stored to EEPROM or FEE",
			"set once the confirmation threshold is reached (typically multiple occurrences)",
		},
		ClearConditions: []string{
			"the stored event ages out",
			"the stored event is displaced by a higher priority event",
			"Dem_ClearDTC clears the fault memory (UDS service 0x14, OBD service 0x04)",
		},
	},
	{
		Bit:       TestNotCompleteSinceLastClear,
		Name:      "testNotCompleteSinceLastClear",
		Abbr:      "TNCSLC",
		Label:     "Test Not Complete Since Last Clear",
		Intro:     "the test has not completed since the last clear operation",
		DescSet:   "the test has not run to completion since the fault memory was cleared",
		DescClear: "the test has completed at least once since the fault memory was cleared",
		Detail: `Tracks whether the test for this DTC has run to completion, with
either a pass or a fail result, since the last clear of the fault
memory. Many tests have enable conditions and do not run just because
the ECU powered up, so this bit tells a technician whether a passed
DTC was actually tested at all.`,
		SetConditions: []string{
			"the fault memory was cleared via Dem_ClearDTC and the test has not completed since",
		},
		ClearConditions: []string{
			"cleared automatically once the test runs to completion",
		},
	},
	{
		Bit:       TestFailedSinceLastClear,
		Name:      "testFailedSinceLastClear",
		Abbr:      "TFSLC",
		Label:     "Test Failed Since Last Clear",
		Intro:     "the test has failed at least once since the last clear operation",
		DescSet:   "the DTC has failed at least once since the fault memory was cleared",
		DescClear: "the DTC has not failed since the fault memory was cleared",
		Detail: `The long-horizon sibling of testFailedThisOperationCycle: instead of
the current operation cycle it covers the whole span since the fault
memory was last cleared. Unlike pendingDTC it never recovers on its
own; only a clear operation resets it.`,
		SetConditions: []string{
			"testFailed was set at any point since the last Dem_ClearDTC",
		},
		ClearConditions: []string{
			"Dem_ClearDTC clears the fault memory (UDS service 0x14, OBD service 0x04)",
		},
	},
	{
		Bit:       TestNotCompletedThisOperationCycle,
		Name:      "testNotCompletedThisOperationCycle",
		Abbr:      "TNCTOC",
		Label:     "Test Not Completed This Operation Cycle",
		Intro:     "the test has not completed within the current operation cycle",
		DescSet:   "the test has not run to completion in the current operation cycle",
		DescClear: "the test completed at least once in the current operation cycle",
		Detail: `The in-cycle counterpart of testNotCompleteSinceLastClear. It starts
each operation cycle at 1 and drops to 0 once the test for this DTC
has run to completion within that cycle, regardless of the result.`,
		SetConditions: []string{
			"set at the start of each operation cycle before the test has run",
		},
		ClearConditions: []string{
			"cleared automatically once the test completes within the cycle",
		},
	},
	{
		Bit:       WarningIndicatorRequested,
		Name:      "warningIndicatorRequested",
		Abbr:      "WIR",
		Label:     "Warning Indicator Requested",
		Intro:     "the DTC requests the driver-visible warning indicator to be active",
		DescSet:   "the ECU requests the warning indicator linked to this DTC",
		DescClear: "the ECU does not request the warning indicator",
		Detail: `Severe DTCs can be linked to a driver-visible warning: a telltale in
the instrument cluster such as the MIL, a text message or a chime.
warningIndicatorRequested reports whether this DTC currently asks for
its indicator to be active.`,
		SetConditions: []string{
			"the ECU requests activation of the linked warning indicator (eg. the MIL)",
			"set when a severe fault occurs",
		},
		ClearConditions: []string{
			"no active DTC requires the indicator any longer",
			"the fault disappears or its severity is downgraded",
		},
	},
}

// Bits returns the definitions of all 8 status bits in ascending bit
// order. The returned slice is a copy and safe to modify.
func Bits() []BitDefinition {
	defs := make([]BitDefinition, len(bitDefinitions))
	copy(defs, bitDefinitions[:])
	return defs
}

// Lookup returns the definition for the given bit position.
func Lookup(bit int) (BitDefinition, error) {
	if bit < 0 || bit > 7 {
		return BitDefinition{}, &BitIndexError{Index: bit}
	}
	return bitDefinitions[bit], nil
}
