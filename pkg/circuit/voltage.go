package circuit

import (
	"regexp"
	"strconv"
	"strings"
)

// Voltage inference is best-effort: it recognizes regulator part numbers and
// power-symbol values by name and pushes the deduced level onto likely
// output nets. Results are heuristic and must never be treated as measured.

// regulatorFamily maps a part-number fragment to a fixed output voltage, or
// to a trailing "-V.V" suffix parse when Voltage is zero.
type regulatorFamily struct {
	Prefix  string
	Voltage float64 // 0 means "parse suffix after the last dash"
}

var regulatorFamilies = []regulatorFamily{
	// Fixed 78xx/79xx style regulators
	{"7805", 5.0},
	{"7806", 6.0},
	{"7808", 8.0},
	{"7809", 9.0},
	{"7810", 10.0},
	{"7812", 12.0},
	{"7815", 15.0},
	{"7824", 24.0},
	// LDO families whose part number carries the voltage as a suffix,
	// e.g. AMS1117-3.3, LD1117-1.8
	{"AMS1117", 0},
	{"LM1117", 0},
	{"LD1117", 0},
	{"AP2112", 0},
	{"MIC5219", 0},
	{"XC6206", 0},
	{"MCP1700", 0},
}

// Sanity bound for suffix-parsed voltages; anything outside (0, 50] volts is
// assumed to be a package code, not a voltage.
const maxPlausibleVoltage = 50.0

// digitVdigit matches compact voltage codes like 3V3 or 1V8
var digitVdigit = regexp.MustCompile(`(\d{1,2})V(\d)`)

// substrings that mark a net as a likely regulator output
var outputNetHints = []string{"OUT", "3V", "5V", "12V", "VCC", "VDD"}

// RegulatorOutputVoltage extracts a fixed output voltage from a component
// value or part-number string. Returns false when the string matches no
// known regulator family or voltage code.
func RegulatorOutputVoltage(value string) (float64, bool) {
	upper := strings.ToUpper(value)

	for _, fam := range regulatorFamilies {
		if !strings.Contains(upper, fam.Prefix) {
			continue
		}
		if fam.Voltage > 0 {
			return fam.Voltage, true
		}
		if v, ok := parseDashSuffix(upper); ok {
			return v, true
		}
	}

	if m := digitVdigit.FindStringSubmatch(upper); m != nil {
		whole, _ := strconv.Atoi(m[1])
		frac, _ := strconv.Atoi(m[2])
		return float64(whole) + float64(frac)/10.0, true
	}

	return 0, false
}

// parseDashSuffix parses a trailing "-V.V" voltage suffix ("AMS1117-3.3")
func parseDashSuffix(upper string) (float64, bool) {
	idx := strings.LastIndex(upper, "-")
	if idx < 0 || idx == len(upper)-1 {
		return 0, false
	}
	v, err := strconv.ParseFloat(upper[idx+1:], 64)
	if err != nil {
		return 0, false
	}
	if v <= 0 || v > maxPlausibleVoltage {
		return 0, false
	}
	return v, true
}

// VirtualSymbolVoltage parses the value of a virtual power symbol (GND,
// +3V3, VCC, ...) into a DC level. Ground names yield 0.0 volts.
func VirtualSymbolVoltage(value string) (float64, bool) {
	upper := strings.ToUpper(strings.TrimPrefix(value, "+"))

	if IsGroundName(upper) {
		return 0.0, true
	}

	switch upper {
	case "3V3":
		return 3.3, true
	case "1V8":
		return 1.8, true
	case "2V5":
		return 2.5, true
	case "5V":
		return 5.0, true
	case "12V":
		return 12.0, true
	case "24V":
		return 24.0, true
	}

	return 0, false
}

// looksLikeOutputNet applies the output-net name heuristic
func looksLikeOutputNet(name string) bool {
	upper := strings.ToUpper(name)
	for _, hint := range outputNetHints {
		if strings.Contains(upper, hint) {
			return true
		}
	}
	return false
}

// PropagateVoltages walks every component in the graph and assigns inferred
// DC levels to nets in place. Topology is never altered.
//
// Regulators push their output voltage onto touching nets whose names match
// the output-net heuristic. Virtual power symbols push their parsed value
// onto every net they touch.
func PropagateVoltages(g *Graph) {
	for _, comp := range g.Components() {
		if comp.Virtual {
			v, ok := VirtualSymbolVoltage(comp.Value)
			if !ok {
				continue
			}
			for _, net := range g.NetsForComponent(comp.Reference) {
				net.SetVoltage(v)
			}
			continue
		}

		v, ok := RegulatorOutputVoltage(comp.Value)
		if !ok {
			continue
		}
		for _, net := range g.NetsForComponent(comp.Reference) {
			if looksLikeOutputNet(net.Name) {
				net.SetVoltage(v)
			}
		}
	}
}
