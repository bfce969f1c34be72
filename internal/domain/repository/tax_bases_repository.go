package repository

import "github.com/ton-entreprise/fiscalia-api/internal/domain/entity"

// TaxBasesRepository définit le port de persistance des bases fiscales.
// Le moteur ne touche jamais au stockage : il reçoit une photographie chargée
// ici et renvoie des valeurs dérivées ; Load renvoie nil (sans erreur) si la
// période n'a pas encore de bases.
type TaxBasesRepository interface {
	Load(workspaceID, period string) (*entity.TaxBases, error)
	Save(bases *entity.TaxBases) error
}
