package sink

// SinkType names a statement sink implementation
type SinkType string

const (
	SinkTypePostgres SinkType = "postgres"
	SinkTypeMemory   SinkType = "memory"
)

func (t SinkType) String() string {
	return string(t)
}

// IsValid reports whether t is a supported sink type
func (t SinkType) IsValid() bool {
	switch t {
	case SinkTypePostgres, SinkTypeMemory:
		return true
	default:
		return false
	}
}

// SinkConfig is the JSON shape of TARGET_DB_CONFIG
type SinkConfig struct {
	SinkType     SinkType               `json:"sink_type"`
	ExtraDetails map[string]interface{} `json:"extra_details"`
}
