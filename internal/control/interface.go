package control

// ControlStore defines the interface for interacting with race controls.
type ControlStore interface {
	AddControl(c Control) (Control, error)
	GetControl(id int64) (Control, error)
	// LastControl returns the most recent control of a league.
	LastControl(league string) (Control, error)
}
