package modem

// Nominal design constants. These are defaults, not limits: any conforming
// parameter set can be supplied through Config, but both ends of a link must
// agree on the values.
const (
	// DefaultSampleRate is the nominal PCM sample rate in Hz.
	DefaultSampleRate = 19000

	// DefaultSymbolRate is the nominal symbol rate in baud.
	DefaultSymbolRate = 50
)

// HeaderBits is the fixed width of the payload-length header that precedes
// every transmission.
const HeaderBits = 32

// defaultCarriers is the nominal carrier frequency table in Hz.
var defaultCarriers = []float64{1000, 2000, 3000, 4000, 5000, 6000}

// nyquistDivisor relates a sample rate to its highest representable frequency.
const nyquistDivisor = 2
