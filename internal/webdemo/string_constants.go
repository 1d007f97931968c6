package webdemo

const (
	colorOriginal = "#e84118"
	colorApprox   = "#40739e"

	defaultSignal = "square"
)
