package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

func TestStatusOptions_DocumentoPorTipo(t *testing.T) {
	uc := workflow.NewCatalogUseCase()

	resp, err := uc.StatusOptions("documents", "DEVIS", status.LocaleFR)
	require.NoError(t, err)
	assert.Equal(t, "document", resp.Entity)
	assert.Equal(t, "DEVIS", resp.DocType)
	require.Len(t, resp.Options, 6)
	assert.Equal(t, "DRAFT", resp.Options[0].Value)
	assert.Equal(t, "Brouillon", resp.Options[0].Label)
	assert.Equal(t, "gray", resp.Options[0].Config.Color)
}

func TestStatusOptions_LeadIgnoraDocType(t *testing.T) {
	uc := workflow.NewCatalogUseCase()

	resp, err := uc.StatusOptions("lead", "FACTURE", status.LocaleEN)
	require.NoError(t, err)
	assert.Empty(t, resp.DocType)
	require.Len(t, resp.Options, 8)
	assert.Equal(t, "NEW", resp.Options[0].Value)
}

func TestStatusOptions_EntidadDesconocida(t *testing.T) {
	_, err := workflow.NewCatalogUseCase().StatusOptions("invoice", "", status.LocaleFR)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransitions_Factura(t *testing.T) {
	resp, err := workflow.NewCatalogUseCase().Transitions("FACTURE", status.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, "Invoice", resp.TypeLabel)
	require.Len(t, resp.Nodes, 6)

	byValue := map[string]bool{}
	for _, n := range resp.Nodes {
		byValue[n.Status.Value] = n.IsTerminal
		if n.IsTerminal {
			assert.Empty(t, n.Next, n.Status.Value)
		}
	}
	assert.True(t, byValue["PAID"])
	assert.True(t, byValue["CANCELLED"])
	assert.False(t, byValue["PARTIAL"])
}

func TestTransitions_TipoDesconocido(t *testing.T) {
	_, err := workflow.NewCatalogUseCase().Transitions("TICKET", status.LocaleFR)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentTypes_TodosLosTipos(t *testing.T) {
	types := workflow.NewCatalogUseCase().DocumentTypes(status.LocaleFR)
	require.Len(t, types, len(status.DocTypes))
	assert.Equal(t, "DEVIS", types[0].Value)
	assert.Equal(t, "Devis", types[0].Label)
	assert.Equal(t, "DEV", types[0].Prefix)

	payable := 0
	for _, dt := range types {
		if dt.Payable {
			payable++
		}
	}
	assert.Equal(t, 2, payable)
}
