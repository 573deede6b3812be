// Package authz memusatkan aturan akses level domain: siapa boleh melihat,
// membuat, dan mengubah apa. Middleware role hanya gerbang kasar di route;
// keputusan final tetap di sini supaya service bisa dites tanpa HTTP.
package authz

import "desaku_backend/internals/constants"

// Actor adalah identitas yang sedang mengakses sistem, hasil decode token.
// Zero value berarti anonim.
type Actor struct {
	ID       uint
	Username string
	Role     string
}

func (a Actor) IsAnonymous() bool {
	return a.ID == 0
}

func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}

// CanViewSubmission: admin melihat semua, user hanya miliknya sendiri.
func CanViewSubmission(a Actor, ownerID uint) bool {
	if a.IsAnonymous() {
		return false
	}
	return a.IsAdmin() || a.ID == ownerID
}

func CanListAllSubmissions(a Actor) bool {
	return a.IsAdmin()
}

// CanCreateSubmission: semua user terautentikasi boleh mengajukan.
func CanCreateSubmission(a Actor) bool {
	return !a.IsAnonymous()
}

// CanUpdateSubmission: transisi status dan catatan admin hanya oleh admin.
func CanUpdateSubmission(a Actor) bool {
	return a.IsAdmin()
}

func CanManageUsers(a Actor) bool {
	return a.IsAdmin()
}

// CanUpdateProfile: setiap user boleh mengubah profilnya sendiri.
func CanUpdateProfile(a Actor, targetID uint) bool {
	if a.IsAnonymous() {
		return false
	}
	return a.IsAdmin() || a.ID == targetID
}
