package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	Y  float64 `json:"y,omitempty"`  // Yaw axis
	E  float64 `json:"e,omitempty"`  // Elevation axis
	S  float64 `json:"s,omitempty"`  // Scroll (power) delta
	Fi bool    `json:"fi,omitempty"` // Fire
	TP bool    `json:"tp,omitempty"` // TogglePreview
	P  bool    `json:"p,omitempty"`  // Pause
	Rs bool    `json:"rs,omitempty"` // Restart
}

// ReplayData contains all data needed to replay a range session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Arena     string       `json:"arena"`
	TimeStep  float64      `json:"timeStep"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
