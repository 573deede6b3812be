package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/sentinel"
)

type UserStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *UserStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) newUser(username, email string) *model.UserModel {
	return &model.UserModel{
		Username: username,
		Password: "hashed-secret",
		FullName: "Warga " + username,
		Email:    email,
		Role:     "user",
	}
}

func (s *UserStoreSuite) TestSequentialIDs() {
	first := s.newUser("budi", "budi@mail.com")
	second := s.newUser("siti", "siti@mail.com")

	s.Require().NoError(s.store.Create(s.ctx, first))
	s.Require().NoError(s.store.Create(s.ctx, second))

	s.Equal(uint(1), first.ID)
	s.Equal(uint(2), second.ID)
	s.False(first.CreatedAt.IsZero())
}

func (s *UserStoreSuite) TestCaseInsensitiveLookups() {
	u := s.newUser("Alice", "Alice@Mail.com")
	s.Require().NoError(s.store.Create(s.ctx, u))

	s.Run("username", func() {
		found, err := s.store.GetByUsername(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal(u.ID, found.ID)

		found, err = s.store.GetByUsername(s.ctx, "ALICE")
		s.Require().NoError(err)
		s.Equal(u.ID, found.ID)
	})

	s.Run("email", func() {
		found, err := s.store.GetByEmail(s.ctx, "alice@mail.com")
		s.Require().NoError(err)
		s.Equal(u.ID, found.ID)
	})

	s.Run("unknown returns ErrNotFound", func() {
		_, err := s.store.GetByUsername(s.ctx, "nobody")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *UserStoreSuite) TestUniquenessConflicts() {
	nik := "1471234567890001"
	u := s.newUser("budi", "budi@mail.com")
	u.NIK = &nik
	s.Require().NoError(s.store.Create(s.ctx, u))

	s.Run("duplicate username case-insensitive", func() {
		dup := s.newUser("BUDI", "lain@mail.com")
		err := s.store.Create(s.ctx, dup)
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("duplicate email", func() {
		dup := s.newUser("lain", "BUDI@mail.com")
		err := s.store.Create(s.ctx, dup)
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("duplicate NIK does not mutate store", func() {
		dup := s.newUser("citra", "citra@mail.com")
		dupNIK := nik
		dup.NIK = &dupNIK

		err := s.store.Create(s.ctx, dup)
		s.Require().ErrorIs(err, sentinel.ErrConflict)

		users, err := s.store.List(s.ctx)
		s.Require().NoError(err)
		s.Len(users, 1)

		_, err = s.store.GetByUsername(s.ctx, "citra")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *UserStoreSuite) TestNIKLookupIsExact() {
	nik := "1471234567890002"
	u := s.newUser("dewi", "dewi@mail.com")
	u.NIK = &nik
	s.Require().NoError(s.store.Create(s.ctx, u))

	found, err := s.store.GetByNIK(s.ctx, nik)
	s.Require().NoError(err)
	s.Equal(u.ID, found.ID)

	_, err = s.store.GetByNIK(s.ctx, "0000000000000000")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *UserStoreSuite) TestUpdateProfile() {
	u := s.newUser("eko", "eko@mail.com")
	s.Require().NoError(s.store.Create(s.ctx, u))

	s.Run("merges only provided fields", func() {
		newName := "Eko Prasetyo"
		phone := "081234567890"
		updated, err := s.store.UpdateProfile(s.ctx, u.ID, ProfileUpdate{
			FullName: &newName,
			Phone:    &phone,
		})
		s.Require().NoError(err)
		s.Equal("Eko Prasetyo", updated.FullName)
		s.Equal("eko@mail.com", updated.Email)
		s.Require().NotNil(updated.Phone)
		s.Equal(phone, *updated.Phone)
		s.Equal("user", updated.Role) // role tidak tersentuh
	})

	s.Run("email conflict with other user", func() {
		other := s.newUser("fajar", "fajar@mail.com")
		s.Require().NoError(s.store.Create(s.ctx, other))

		taken := "eko@mail.com"
		_, err := s.store.UpdateProfile(s.ctx, other.ID, ProfileUpdate{Email: &taken})
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("unknown id", func() {
		name := "x"
		_, err := s.store.UpdateProfile(s.ctx, 999, ProfileUpdate{FullName: &name})
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *UserStoreSuite) TestUpdatePasswordAndRole() {
	u := s.newUser("gita", "gita@mail.com")
	s.Require().NoError(s.store.Create(s.ctx, u))

	s.Require().NoError(s.store.UpdatePassword(s.ctx, u.ID, "new-hash"))
	s.Require().NoError(s.store.UpdateRole(s.ctx, u.ID, "admin"))

	found, err := s.store.GetByID(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Equal("new-hash", found.Password)
	s.Equal("admin", found.Role)

	s.Require().ErrorIs(s.store.UpdatePassword(s.ctx, 999, "x"), sentinel.ErrNotFound)
	s.Require().ErrorIs(s.store.UpdateRole(s.ctx, 999, "admin"), sentinel.ErrNotFound)
}
