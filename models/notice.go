package models

// AdvisoryCode identifies which preflight check produced an [Advisory].
type AdvisoryCode string

const (
	// AdvisoryVendorMissing: the runtime vendor has no entry in the
	// configuration store at all.
	AdvisoryVendorMissing AdvisoryCode = "vendor_missing"
	// AdvisoryRuntimeMissing: the vendor exists but the runtime family does not.
	AdvisoryRuntimeMissing AdvisoryCode = "runtime_missing"
	// AdvisoryRuntimeIncomplete: the runtime family exists but the product
	// entry is missing.
	AdvisoryRuntimeIncomplete AdvisoryCode = "runtime_incomplete"
	// AdvisoryRuntimeWrongVersion: the runtime is installed without the
	// required version.
	AdvisoryRuntimeWrongVersion AdvisoryCode = "runtime_wrong_version"
	// AdvisoryStoreUnavailable: the configuration store could not be read.
	AdvisoryStoreUnavailable AdvisoryCode = "store_unavailable"
)

// Advisory is a non-fatal preflight outcome. It is reported to the user and
// never blocks the launch.
type Advisory struct {
	Code    AdvisoryCode
	Message string
}

// Notice converts the advisory into a reportable [Notice].
func (a Advisory) Notice() Notice {
	return Notice{Severity: SeverityAdvisory, Code: string(a.Code), Message: a.Message}
}

// Severity tells a reporting sink how to present a [Notice].
type Severity int

const (
	SeverityAdvisory Severity = iota
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityAdvisory:
		return "advisory"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Notice is a single message shown to the user during bootstrap.
type Notice struct {
	Severity Severity
	Code     string
	Message  string
}
