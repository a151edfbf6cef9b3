// internal/fault/table.go
package fault

// Built-in fault code table for the IPIDS ion source.
// Index positions match the instrument's faultArray layout.
// This is configuration data, not logic: deployments extend or override
// it from YAML (faults.codes).

var defaultTable = map[int]string{
	0:  "Emergency stop engaged",
	1:  "Vacuum interlock open",
	2:  "Water coolant primary flow reads off",
	3:  "Water coolant secondary flow reads off",
	4:  "Source pressure above operating window",
	6:  "Beam voltage supply trip",
	7:  "Extraction voltage supply trip",
	8:  "Filament current out of range",
	10: "Magnet power supply trip",
	11: "Magnet coil over-temperature",
	15: "Einzel lens supply trip",
	20: "Gas feed valve fault",
	21: "Gas bottle pressure low",
	30: "Turbo pump speed low",
	31: "Backing pump fault",
	40: "Chiller communication lost",
	50: "PLC watchdog timeout",
}

// DefaultTable returns a copy of the built-in index to description table.
// Copy, so callers can layer config overrides without mutating package
// state.
func DefaultTable() map[int]string {
	t := make(map[int]string, len(defaultTable))
	for k, v := range defaultTable {
		t[k] = v
	}
	return t
}
