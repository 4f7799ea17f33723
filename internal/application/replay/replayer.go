package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/artillery/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Yaw:           fi.Y,
		Elevation:     fi.E,
		Scroll:        fi.S,
		Fire:          fi.Fi,
		TogglePreview: fi.TP,
		Pause:         fi.P,
		Restart:       fi.Rs,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Session returns the recorded session id
func (r *Replayer) Session() string {
	return r.data.Session
}

// Arena returns the arena the recording was made in
func (r *Replayer) Arena() string {
	return r.data.Arena
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing with the same
// input on every frame
func CreateTestReplayData(frames int, input system.InputState) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Session:   "test-session",
		Arena:     "test",
		TimeStep:  1.0 / 60.0,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			Y:  input.Yaw,
			E:  input.Elevation,
			S:  input.Scroll,
			Fi: input.Fire,
			TP: input.TogglePreview,
			P:  input.Pause,
			Rs: input.Restart,
		}
	}

	return data
}
