package ohms

import "strconv"

// Denomination tiers per quantity, ordered from the canonical unit upward.
var (
	currentUnits    = []Unit{MicroAmp, MilliAmp, Amp}
	voltageUnits    = []Unit{MicroVolt, MilliVolt, Volt, KiloVolt}
	resistanceUnits = []Unit{MilliOhm, Ohm, KiloOhm, MegaOhm}
	powerUnits      = []Unit{MicroWatt, MilliWatt, Watt, KiloWatt}
)

// formatCanonical renders n canonical units using the largest denomination
// in tiers for which the magnitude is at least one, with two decimal places.
func formatCanonical(n uint64, tiers []Unit) string {
	unit := tiers[0]
	for _, t := range tiers[1:] {
		if n < t.ratio() {
			break
		}
		unit = t
	}
	buf := make([]byte, 0, 24)
	buf = strconv.AppendFloat(buf, float64(n)/float64(unit.ratio()), 'f', 2, 64)
	buf = append(buf, ' ')
	buf = append(buf, unit.Symbol()...)
	return string(buf)
}
