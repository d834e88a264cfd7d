package match

// Method selects how a profile is computed.
type Method int

const (
	// MethodAuto picks MethodFFT for templates of at least fftThreshold samples.
	MethodAuto Method = iota

	// MethodDirect evaluates each window independently in O(M).
	MethodDirect

	// MethodFFT computes all windows with one FFT correlation.
	MethodFFT
)

// fftThreshold is the template length from which MethodAuto uses the FFT.
const fftThreshold = 64

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// ParseMethod maps "auto", "direct" or "fft" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "auto", "":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, ErrUnknownMethod
	}
}

// Option configures profile computation.
type Option func(*config)

type config struct {
	method Method
}

// WithMethod forces a computation method.
func WithMethod(m Method) Option {
	return func(c *config) {
		c.method = m
	}
}

func buildConfig(templateLen int, opts []Option) config {
	cfg := config{method: MethodAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.method == MethodAuto {
		cfg.method = MethodDirect
		if templateLen >= fftThreshold {
			cfg.method = MethodFFT
		}
	}
	return cfg
}
