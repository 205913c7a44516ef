package mailbatch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"townclerk/pkg/mailbatch"
	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

const sampleBatch = `
mail:
  - reference: "2026/0144"
    subject: "Noise complaint, Elm Street"
    contact_id: 12
  - reference: "2026/0145"
    subject: "Building permit question"
    status: archived
    service_id: 3
`

type fakeMailStore struct {
	store.MailStore

	created []store.MailInput
	failOn  string
}

func (f *fakeMailStore) CreateMail(input store.MailInput) (*model.MailIn, error) {
	if input.Reference == f.failOn {
		return nil, store.ErrInvalidInput
	}
	f.created = append(f.created, input)
	return &model.MailIn{ID: int64(len(f.created)), Reference: input.Reference}, nil
}

func TestParse(t *testing.T) {
	batch, err := mailbatch.Parse(strings.NewReader(sampleBatch))
	require.NoError(t, err)

	require.Len(t, batch.Mail, 2)
	assert.Equal(t, "2026/0144", batch.Mail[0].Reference)
	require.NotNil(t, batch.Mail[0].ContactID)
	assert.Equal(t, int64(12), *batch.Mail[0].ContactID)
	assert.Equal(t, "archived", batch.Mail[1].Status)
}

func TestParseRejectsMissingReference(t *testing.T) {
	doc := `
mail:
  - subject: "No reference"
`
	_, err := mailbatch.Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference is required")
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	doc := `
mail:
  - reference: "2026/0001"
    subject: "Test"
    status: vanished
`
	_, err := mailbatch.Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestParseRejectsEmptyBatch(t *testing.T) {
	_, err := mailbatch.Parse(strings.NewReader("mail: []"))
	require.Error(t, err)
}

func TestImport(t *testing.T) {
	batch, err := mailbatch.Parse(strings.NewReader(sampleBatch))
	require.NoError(t, err)

	fake := &fakeMailStore{}
	result := mailbatch.Import(fake, batch)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)

	require.Len(t, fake.created, 2)
	require.NotNil(t, fake.created[1].Status)
	assert.Equal(t, model.MailStatusArchived, *fake.created[1].Status)
}

func TestImportReportsFailedEntries(t *testing.T) {
	batch, err := mailbatch.Parse(strings.NewReader(sampleBatch))
	require.NoError(t, err)

	fake := &fakeMailStore{failOn: "2026/0144"}
	result := mailbatch.Import(fake, batch)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "2026/0144")
}
