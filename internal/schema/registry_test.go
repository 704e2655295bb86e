package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZahidRWTH/docextract/internal/common"
	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

func TestDefaultMatchesVocabulary(t *testing.T) {
	r := Default()
	assert.Equal(t, model.GeneralKeys, r.GeneralKeys())
	for _, typ := range model.DocumentTypes {
		assert.Equal(t, model.DomainKeys(typ), r.DomainKeys(typ), typ)
	}
	assert.Empty(t, r.DomainKeys(model.DocumentTypeUnknown))
}

// generalJSON renders the general group with every general key except skip, followed by extra.
func generalJSON(skip model.Key, extra ...model.Key) string {
	var parts []string
	for _, k := range append(slices.Clone(model.GeneralKeys), extra...) {
		if k == skip {
			continue
		}
		parts = append(parts, fmt.Sprintf(`{"name":%q,"kind":"text"}`, k))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "narrowed credit type",
			data: `{"version":1,"general":` + generalJSON("") + `,` +
				`"types":{"credit":[{"name":"credit_limit","kind":"money"}]}}`,
		},
		{
			name:    "not json",
			data:    `{`,
			wantErr: true,
		},
		{
			name:    "missing version",
			data:    `{"general":[],"types":{}}`,
			wantErr: true,
		},
		{
			name:    "unknown kind",
			data:    `{"version":1,"general":[{"name":"document_id","kind":"blob"}],"types":{}}`,
			wantErr: true,
		},
		{
			name:    "unknown document type",
			data:    `{"version":1,"general":` + generalJSON("") + `,"types":{"mortgage":[]}}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			data:    `{"version":1,"general":` + generalJSON("") + `,"types":{"credit":[{"name":"shoe_size","kind":"count"}]}}`,
			wantErr: true,
		},
		{
			name:    "general without document id",
			data:    `{"version":1,"general":` + generalJSON(model.KeyDocumentID) + `,"types":{}}`,
			wantErr: true,
		},
		{
			name:    "domain key in general group",
			data:    `{"version":1,"general":` + generalJSON("", model.KeyCardNumber) + `,"types":{}}`,
			wantErr: true,
		},
		{
			name: "key under another type",
			data: `{"version":1,"general":` + generalJSON("") + `,` +
				`"types":{"investment":[{"name":"card_number","kind":"id"}]}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidSchema)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.GeneralKeys, r.GeneralKeys())
			assert.Equal(t, []model.Key{model.KeyCreditLimit}, r.DomainKeys(model.DocumentTypeCredit))
			assert.Empty(t, r.DomainKeys(model.DocumentTypeInvestment))
		})
	}
}

func TestLoad(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	assert.Len(t, r.GeneralKeys(), len(model.GeneralKeys))

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, common.ErrNotFound)

	path := filepath.Join(t.TempDir(), "fields.json")
	require.NoError(t, os.WriteFile(path, defaultDefinitions, 0o600))
	r, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Definitions().Version)
}
