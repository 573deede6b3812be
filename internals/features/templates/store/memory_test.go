package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"

	"desaku_backend/internals/features/templates/model"
	"desaku_backend/internals/sentinel"
)

type TemplateStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *TemplateStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestTemplateStoreSuite(t *testing.T) {
	suite.Run(t, new(TemplateStoreSuite))
}

func (s *TemplateStoreSuite) TestCRUDRoundTrip() {
	t := &model.TemplateModel{
		Type:    "domisili",
		Name:    "Surat Keterangan Domisili",
		Content: "Yang bertanda tangan di bawah ini menerangkan bahwa {{nama}} berdomisili di {{alamat}}.",
		Fields:  datatypes.JSON(`[{"name":"nama","label":"Nama Lengkap","required":true}]`),
	}
	s.Require().NoError(s.store.Create(s.ctx, t))
	s.Equal(uint(1), t.ID)
	s.False(t.CreatedAt.IsZero())

	got, err := s.store.GetByID(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Equal(t.Name, got.Name)
	s.Equal(t.Fields, got.Fields)

	got.Name = "Surat Domisili (revisi)"
	s.Require().NoError(s.store.Update(s.ctx, got))

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Surat Domisili (revisi)", all[0].Name)

	s.Require().NoError(s.store.Delete(s.ctx, t.ID))
	_, err = s.store.GetByID(s.ctx, t.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *TemplateStoreSuite) TestListOrderedByID() {
	for _, name := range []string{"Template A", "Template B", "Template C"} {
		s.Require().NoError(s.store.Create(s.ctx, &model.TemplateModel{
			Type:    "lainnya",
			Name:    name,
			Content: "isi",
		}))
	}

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Template A", all[0].Name)
	s.Equal("Template C", all[2].Name)
}

func (s *TemplateStoreSuite) TestUpdateUnknown() {
	err := s.store.Update(s.ctx, &model.TemplateModel{ID: 42, Name: "x"})
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().ErrorIs(s.store.Delete(s.ctx, 42), sentinel.ErrNotFound)
}
