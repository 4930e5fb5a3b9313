package model

// ImageOrigin records how an image reached the upload flow.
type ImageOrigin string

// Image origins.
const (
	OriginPicker  ImageOrigin = "picker"
	OriginPaste   ImageOrigin = "paste"
	OriginInbox   ImageOrigin = "inbox"
	OriginCapture ImageOrigin = "capture"
	OriginFile    ImageOrigin = "file"
)

// StagedImage is an image decoded into displayable form and ready to classify.
type StagedImage struct {
	Name     string
	MIMEType string
	DataURI  string
	Origin   ImageOrigin
	Size     int64
	Width    int
	Height   int
}

// Synthetic reports whether the image was produced by the simulated camera.
func (i StagedImage) Synthetic() bool {
	return i.Origin == OriginCapture
}

// Dimensions reports whether the image's pixel size is known.
func (i StagedImage) Dimensions() (int, int, bool) {
	return i.Width, i.Height, i.Width > 0 && i.Height > 0
}
