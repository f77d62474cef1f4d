// Package unit enumerates the measurement units sensor readings are
// expressed in and maps each one to its display symbol.
package unit

// Unit identifies the physical unit of a sensor reading.
type Unit uint8

// Known units. Values are wire-stable; append only.
const (
	Celsius        Unit = iota // °C
	Percent                    // %
	Lux                        // lx
	Pascal                     // Pa
	Volt                       // V
	Ampere                     // A
	MeterPerSecond             // m/s
)

// texts is indexed by Unit ordinal; order must match the constant block.
var texts = [...]string{
	"°C",
	"%",
	"lx",
	"Pa",
	"V",
	"A",
	"m/s",
}

// Text returns the display symbol for u, or "" when u is outside the
// enumeration.
func (u Unit) Text() string {
	if int(u) < len(texts) {
		return texts[u]
	}
	return ""
}

// String implements fmt.Stringer; identical to Text.
func (u Unit) String() string { return u.Text() }
