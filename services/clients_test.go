package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/repository"
)

func newTestClientService(t *testing.T) *ClientService {
	t.Helper()
	return NewClientService(setupStore(t).Clients())
}

func TestClientCRUD(t *testing.T) {
	svc := newTestClientService(t)

	created, err := svc.Create(models.Client{
		FirstName:   "Grace",
		LastName:    "Hopper",
		CompanyName: "Navy Labs",
		Email:       "grace@navy.test",
		Phone:       "555-0100",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	phone := "555-0199"
	updated, err := svc.Update(created.ID, models.ClientPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Grace", updated.FirstName)

	require.NoError(t, svc.Delete(created.ID))
	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClientValidation(t *testing.T) {
	svc := newTestClientService(t)

	cases := []struct {
		name   string
		client models.Client
		field  string
	}{
		{"Missing Name", models.Client{Email: "a@b.co", Phone: "1"}, "first_name"},
		{"Bad Email", models.Client{FirstName: "A", Email: "not-an-email", Phone: "1"}, "email"},
		{"Missing Phone", models.Client{FirstName: "A", Email: "a@b.co"}, "phone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.client)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	// Merge-updates are validated against the merged record.
	created, err := svc.Create(models.Client{FirstName: "A", Email: "a@b.co", Phone: "1"})
	require.NoError(t, err)
	bad := "nope"
	_, err = svc.Update(created.ID, models.ClientPatch{Email: &bad})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestClientSearch(t *testing.T) {
	svc := newTestClientService(t)

	for _, c := range []models.Client{
		{FirstName: "Grace", LastName: "Hopper", CompanyName: "Navy Labs", Email: "grace@navy.test", Phone: "1"},
		{FirstName: "Ada", LastName: "Lovelace", CompanyName: "Analytical Engines", Email: "ada@engines.test", Phone: "2"},
		{FirstName: "Alan", LastName: "Turing", CompanyName: "Bletchley", Email: "alan@bletchley.test", Phone: "3"},
	} {
		_, err := svc.Create(c)
		require.NoError(t, err)
	}

	got, err := svc.Search("GRACE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hopper", got[0].LastName)

	got, err = svc.Search("engines")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0].FirstName)

	got, err = svc.Search("bletchley.test")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.Search("")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.Search("nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdateMissingClient(t *testing.T) {
	svc := newTestClientService(t)
	name := "X"
	_, err := svc.Update("missing", models.ClientPatch{FirstName: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
