package export_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/infrastructure/export"
)

func TestExportJournalXML(t *testing.T) {
	ws := &entity.Workspace{ID: "ws1", Name: "Comptoir Dakar SARL", NINEA: "006584213"}
	entries := []entity.JournalEntry{
		{
			ID:            "e1",
			WorkspaceID:   "ws1",
			Date:          time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Description:   "Vente au comptant",
			DebitAccount:  "571",
			CreditAccount: "701",
			Amount:        decimal.NewFromInt(100_000),
			Reference:     "FAC-2025-001",
		},
		{
			ID:            "e2",
			WorkspaceID:   "ws1",
			Date:          time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			Description:   "Achat fournitures",
			DebitAccount:  "601",
			CreditAccount: "571",
			Amount:        decimal.NewFromInt(30_000),
		},
	}

	out, err := export.NewJournalXMLExporter().ExportJournalXML(ws, entries)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out), "le document produit doit se reparser")

	root := doc.SelectElement("journal")
	require.NotNil(t, root)
	assert.Equal(t, "XOF", root.SelectAttrValue("devise", ""))
	assert.Equal(t, "006584213", root.FindElement("dossier/ninea").Text())

	ecritures := root.FindElements("ecritures/ecriture")
	require.Len(t, ecritures, 2)
	assert.Equal(t, "2025-03-15", ecritures[0].FindElement("date").Text())
	assert.Equal(t, "100000", ecritures[0].FindElement("montant").Text())
	assert.Equal(t, "FAC-2025-001", ecritures[0].FindElement("reference").Text())
	assert.Nil(t, ecritures[1].FindElement("reference"), "référence absente non sérialisée")
}
