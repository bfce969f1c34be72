// Package export implémente la remise du journal comptable au format XML,
// destinée au cabinet comptable ou à l'archivage.
package export

import (
	"fmt"

	"github.com/beevik/etree"
	appledger "github.com/ton-entreprise/fiscalia-api/internal/application/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

var _ appledger.JournalExporter = (*JournalXMLExporter)(nil)

// JournalXMLExporter sérialise le journal d'un dossier en XML.
// Une écriture par élément <ecriture>, montants en décimal exact tels que
// saisis, dates au format ISO.
type JournalXMLExporter struct{}

// NewJournalXMLExporter construit l'exporteur.
func NewJournalXMLExporter() *JournalXMLExporter { return &JournalXMLExporter{} }

// ExportJournalXML génère le document XML du journal et renvoie ses octets.
func (e *JournalXMLExporter) ExportJournalXML(ws *entity.Workspace, entries []entity.JournalEntry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("journal")
	root.CreateAttr("devise", "XOF")

	dossier := root.CreateElement("dossier")
	dossier.CreateElement("nom").SetText(ws.Name)
	if ws.NINEA != "" {
		dossier.CreateElement("ninea").SetText(ws.NINEA)
	}

	ecritures := root.CreateElement("ecritures")
	ecritures.CreateAttr("nombre", fmt.Sprintf("%d", len(entries)))
	for _, entry := range entries {
		el := ecritures.CreateElement("ecriture")
		el.CreateAttr("id", entry.ID)
		el.CreateElement("date").SetText(entry.Date.Format("2006-01-02"))
		el.CreateElement("libelle").SetText(entry.Description)
		el.CreateElement("compteDebit").SetText(entry.DebitAccount)
		el.CreateElement("compteCredit").SetText(entry.CreditAccount)
		el.CreateElement("montant").SetText(entry.Amount.String())
		if entry.Reference != "" {
			el.CreateElement("reference").SetText(entry.Reference)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: sérialiser journal: %w", err)
	}
	return out, nil
}
