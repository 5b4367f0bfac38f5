// Code generated by ent, DO NOT EDIT.

package ent

import (
	"btp-catalogue/db/ent/schema"
	"btp-catalogue/gen/ent/facture"
	"btp-catalogue/gen/ent/job"
	"btp-catalogue/gen/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	factureFields := schema.Facture{}.Fields()
	_ = factureFields
	// factureDescNbProduits is the schema descriptor for nb_produits field.
	factureDescNbProduits := factureFields[5].Descriptor()
	// facture.DefaultNbProduits holds the default value on creation for the nb_produits field.
	facture.DefaultNbProduits = factureDescNbProduits.Default.(int)
	// factureDescFichier is the schema descriptor for fichier field.
	factureDescFichier := factureFields[6].Descriptor()
	// facture.FichierValidator is a validator for the "fichier" field. It is called by the builders before save.
	facture.FichierValidator = factureDescFichier.Validators[0].(func(string) error)
	// factureDescSource is the schema descriptor for source field.
	factureDescSource := factureFields[8].Descriptor()
	// facture.DefaultSource holds the default value on creation for the source field.
	facture.DefaultSource = factureDescSource.Default.(string)
	// facture.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	facture.SourceValidator = factureDescSource.Validators[0].(func(string) error)
	// factureDescStatut is the schema descriptor for statut field.
	factureDescStatut := factureFields[9].Descriptor()
	// facture.StatutValidator is a validator for the "statut" field. It is called by the builders before save.
	facture.StatutValidator = func() func(string) error {
		validators := factureDescStatut.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(statut string) error {
			for _, fn := range fns {
				if err := fn(statut); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// factureDescCreatedAt is the schema descriptor for created_at field.
	factureDescCreatedAt := factureFields[17].Descriptor()
	// facture.DefaultCreatedAt holds the default value on creation for the created_at field.
	facture.DefaultCreatedAt = factureDescCreatedAt.Default.(func() time.Time)
	// factureDescID is the schema descriptor for id field.
	factureDescID := factureFields[0].Descriptor()
	// facture.DefaultID holds the default value on creation for the id field.
	facture.DefaultID = factureDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[2].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescFichier is the schema descriptor for fichier field.
	jobDescFichier := jobFields[3].Descriptor()
	// job.FichierValidator is a validator for the "fichier" field. It is called by the builders before save.
	job.FichierValidator = jobDescFichier.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[6].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[7].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
