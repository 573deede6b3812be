package sentinel

import "errors"

// Sentinel errors lintas layer. Store dan service mengembalikan nilai ini
// (boleh dibungkus dengan %w) supaya controller bisa menerjemahkannya ke
// status HTTP tanpa perlu tahu detail implementasi di bawahnya.
var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUploadRejected    = errors.New("upload rejected")
)

type wrapped struct {
	base error
	msg  string
}

func (w wrapped) Error() string { return w.msg }
func (w wrapped) Unwrap() error { return w.base }

// With membungkus sentinel dengan pesan yang siap ditampilkan ke user
// (Bahasa Indonesia), tanpa kehilangan identitas errors.Is.
func With(base error, msg string) error {
	return wrapped{base: base, msg: msg}
}
