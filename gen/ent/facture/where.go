// Code generated by ent, DO NOT EDIT.

package facture

import (
	"btp-catalogue/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldUserID, v))
}

// Fournisseur applies equality check predicate on the "fournisseur" field. It's identical to FournisseurEQ.
func Fournisseur(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldFournisseur, v))
}

// NumeroFacture applies equality check predicate on the "numero_facture" field. It's identical to NumeroFactureEQ.
func NumeroFacture(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldNumeroFacture, v))
}

// DateFacture applies equality check predicate on the "date_facture" field. It's identical to DateFactureEQ.
func DateFacture(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldDateFacture, v))
}

// NbProduits applies equality check predicate on the "nb_produits" field. It's identical to NbProduitsEQ.
func NbProduits(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldNbProduits, v))
}

// Fichier applies equality check predicate on the "fichier" field. It's identical to FichierEQ.
func Fichier(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldFichier, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldMimeType, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldSource, v))
}

// Statut applies equality check predicate on the "statut" field. It's identical to StatutEQ.
func Statut(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldStatut, v))
}

// Erreur applies equality check predicate on the "erreur" field. It's identical to ErreurEQ.
func Erreur(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldErreur, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldModelName, v))
}

// CoutUsd applies equality check predicate on the "cout_usd" field. It's identical to CoutUsdEQ.
func CoutUsd(v float64) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldCoutUsd, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldPromptTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldOutputTokens, v))
}

// Langue applies equality check predicate on the "langue" field. It's identical to LangueEQ.
func Langue(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldLangue, v))
}

// ArchiveRef applies equality check predicate on the "archive_ref" field. It's identical to ArchiveRefEQ.
func ArchiveRef(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldArchiveRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldUserID, vs...))
}

// FournisseurEQ applies the EQ predicate on the "fournisseur" field.
func FournisseurEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldFournisseur, v))
}

// FournisseurNEQ applies the NEQ predicate on the "fournisseur" field.
func FournisseurNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldFournisseur, v))
}

// FournisseurIn applies the In predicate on the "fournisseur" field.
func FournisseurIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldFournisseur, vs...))
}

// FournisseurNotIn applies the NotIn predicate on the "fournisseur" field.
func FournisseurNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldFournisseur, vs...))
}

// FournisseurGT applies the GT predicate on the "fournisseur" field.
func FournisseurGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldFournisseur, v))
}

// FournisseurGTE applies the GTE predicate on the "fournisseur" field.
func FournisseurGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldFournisseur, v))
}

// FournisseurLT applies the LT predicate on the "fournisseur" field.
func FournisseurLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldFournisseur, v))
}

// FournisseurLTE applies the LTE predicate on the "fournisseur" field.
func FournisseurLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldFournisseur, v))
}

// FournisseurContains applies the Contains predicate on the "fournisseur" field.
func FournisseurContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldFournisseur, v))
}

// FournisseurHasPrefix applies the HasPrefix predicate on the "fournisseur" field.
func FournisseurHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldFournisseur, v))
}

// FournisseurHasSuffix applies the HasSuffix predicate on the "fournisseur" field.
func FournisseurHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldFournisseur, v))
}

// FournisseurIsNil applies the IsNil predicate on the "fournisseur" field.
func FournisseurIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldFournisseur))
}

// FournisseurNotNil applies the NotNil predicate on the "fournisseur" field.
func FournisseurNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldFournisseur))
}

// FournisseurEqualFold applies the EqualFold predicate on the "fournisseur" field.
func FournisseurEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldFournisseur, v))
}

// FournisseurContainsFold applies the ContainsFold predicate on the "fournisseur" field.
func FournisseurContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldFournisseur, v))
}

// NumeroFactureEQ applies the EQ predicate on the "numero_facture" field.
func NumeroFactureEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldNumeroFacture, v))
}

// NumeroFactureNEQ applies the NEQ predicate on the "numero_facture" field.
func NumeroFactureNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldNumeroFacture, v))
}

// NumeroFactureIn applies the In predicate on the "numero_facture" field.
func NumeroFactureIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldNumeroFacture, vs...))
}

// NumeroFactureNotIn applies the NotIn predicate on the "numero_facture" field.
func NumeroFactureNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldNumeroFacture, vs...))
}

// NumeroFactureGT applies the GT predicate on the "numero_facture" field.
func NumeroFactureGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldNumeroFacture, v))
}

// NumeroFactureGTE applies the GTE predicate on the "numero_facture" field.
func NumeroFactureGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldNumeroFacture, v))
}

// NumeroFactureLT applies the LT predicate on the "numero_facture" field.
func NumeroFactureLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldNumeroFacture, v))
}

// NumeroFactureLTE applies the LTE predicate on the "numero_facture" field.
func NumeroFactureLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldNumeroFacture, v))
}

// NumeroFactureContains applies the Contains predicate on the "numero_facture" field.
func NumeroFactureContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldNumeroFacture, v))
}

// NumeroFactureHasPrefix applies the HasPrefix predicate on the "numero_facture" field.
func NumeroFactureHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldNumeroFacture, v))
}

// NumeroFactureHasSuffix applies the HasSuffix predicate on the "numero_facture" field.
func NumeroFactureHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldNumeroFacture, v))
}

// NumeroFactureIsNil applies the IsNil predicate on the "numero_facture" field.
func NumeroFactureIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldNumeroFacture))
}

// NumeroFactureNotNil applies the NotNil predicate on the "numero_facture" field.
func NumeroFactureNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldNumeroFacture))
}

// NumeroFactureEqualFold applies the EqualFold predicate on the "numero_facture" field.
func NumeroFactureEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldNumeroFacture, v))
}

// NumeroFactureContainsFold applies the ContainsFold predicate on the "numero_facture" field.
func NumeroFactureContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldNumeroFacture, v))
}

// DateFactureEQ applies the EQ predicate on the "date_facture" field.
func DateFactureEQ(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldDateFacture, v))
}

// DateFactureNEQ applies the NEQ predicate on the "date_facture" field.
func DateFactureNEQ(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldDateFacture, v))
}

// DateFactureIn applies the In predicate on the "date_facture" field.
func DateFactureIn(vs ...time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldDateFacture, vs...))
}

// DateFactureNotIn applies the NotIn predicate on the "date_facture" field.
func DateFactureNotIn(vs ...time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldDateFacture, vs...))
}

// DateFactureGT applies the GT predicate on the "date_facture" field.
func DateFactureGT(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldDateFacture, v))
}

// DateFactureGTE applies the GTE predicate on the "date_facture" field.
func DateFactureGTE(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldDateFacture, v))
}

// DateFactureLT applies the LT predicate on the "date_facture" field.
func DateFactureLT(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldDateFacture, v))
}

// DateFactureLTE applies the LTE predicate on the "date_facture" field.
func DateFactureLTE(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldDateFacture, v))
}

// DateFactureIsNil applies the IsNil predicate on the "date_facture" field.
func DateFactureIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldDateFacture))
}

// DateFactureNotNil applies the NotNil predicate on the "date_facture" field.
func DateFactureNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldDateFacture))
}

// NbProduitsEQ applies the EQ predicate on the "nb_produits" field.
func NbProduitsEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldNbProduits, v))
}

// NbProduitsNEQ applies the NEQ predicate on the "nb_produits" field.
func NbProduitsNEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldNbProduits, v))
}

// NbProduitsIn applies the In predicate on the "nb_produits" field.
func NbProduitsIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldNbProduits, vs...))
}

// NbProduitsNotIn applies the NotIn predicate on the "nb_produits" field.
func NbProduitsNotIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldNbProduits, vs...))
}

// NbProduitsGT applies the GT predicate on the "nb_produits" field.
func NbProduitsGT(v int) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldNbProduits, v))
}

// NbProduitsGTE applies the GTE predicate on the "nb_produits" field.
func NbProduitsGTE(v int) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldNbProduits, v))
}

// NbProduitsLT applies the LT predicate on the "nb_produits" field.
func NbProduitsLT(v int) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldNbProduits, v))
}

// NbProduitsLTE applies the LTE predicate on the "nb_produits" field.
func NbProduitsLTE(v int) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldNbProduits, v))
}

// FichierEQ applies the EQ predicate on the "fichier" field.
func FichierEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldFichier, v))
}

// FichierNEQ applies the NEQ predicate on the "fichier" field.
func FichierNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldFichier, v))
}

// FichierIn applies the In predicate on the "fichier" field.
func FichierIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldFichier, vs...))
}

// FichierNotIn applies the NotIn predicate on the "fichier" field.
func FichierNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldFichier, vs...))
}

// FichierGT applies the GT predicate on the "fichier" field.
func FichierGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldFichier, v))
}

// FichierGTE applies the GTE predicate on the "fichier" field.
func FichierGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldFichier, v))
}

// FichierLT applies the LT predicate on the "fichier" field.
func FichierLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldFichier, v))
}

// FichierLTE applies the LTE predicate on the "fichier" field.
func FichierLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldFichier, v))
}

// FichierContains applies the Contains predicate on the "fichier" field.
func FichierContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldFichier, v))
}

// FichierHasPrefix applies the HasPrefix predicate on the "fichier" field.
func FichierHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldFichier, v))
}

// FichierHasSuffix applies the HasSuffix predicate on the "fichier" field.
func FichierHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldFichier, v))
}

// FichierEqualFold applies the EqualFold predicate on the "fichier" field.
func FichierEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldFichier, v))
}

// FichierContainsFold applies the ContainsFold predicate on the "fichier" field.
func FichierContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldFichier, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldMimeType, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldSource, v))
}

// StatutEQ applies the EQ predicate on the "statut" field.
func StatutEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldStatut, v))
}

// StatutNEQ applies the NEQ predicate on the "statut" field.
func StatutNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldStatut, v))
}

// StatutIn applies the In predicate on the "statut" field.
func StatutIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldStatut, vs...))
}

// StatutNotIn applies the NotIn predicate on the "statut" field.
func StatutNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldStatut, vs...))
}

// StatutGT applies the GT predicate on the "statut" field.
func StatutGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldStatut, v))
}

// StatutGTE applies the GTE predicate on the "statut" field.
func StatutGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldStatut, v))
}

// StatutLT applies the LT predicate on the "statut" field.
func StatutLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldStatut, v))
}

// StatutLTE applies the LTE predicate on the "statut" field.
func StatutLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldStatut, v))
}

// StatutContains applies the Contains predicate on the "statut" field.
func StatutContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldStatut, v))
}

// StatutHasPrefix applies the HasPrefix predicate on the "statut" field.
func StatutHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldStatut, v))
}

// StatutHasSuffix applies the HasSuffix predicate on the "statut" field.
func StatutHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldStatut, v))
}

// StatutEqualFold applies the EqualFold predicate on the "statut" field.
func StatutEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldStatut, v))
}

// StatutContainsFold applies the ContainsFold predicate on the "statut" field.
func StatutContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldStatut, v))
}

// ErreurEQ applies the EQ predicate on the "erreur" field.
func ErreurEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldErreur, v))
}

// ErreurNEQ applies the NEQ predicate on the "erreur" field.
func ErreurNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldErreur, v))
}

// ErreurIn applies the In predicate on the "erreur" field.
func ErreurIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldErreur, vs...))
}

// ErreurNotIn applies the NotIn predicate on the "erreur" field.
func ErreurNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldErreur, vs...))
}

// ErreurGT applies the GT predicate on the "erreur" field.
func ErreurGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldErreur, v))
}

// ErreurGTE applies the GTE predicate on the "erreur" field.
func ErreurGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldErreur, v))
}

// ErreurLT applies the LT predicate on the "erreur" field.
func ErreurLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldErreur, v))
}

// ErreurLTE applies the LTE predicate on the "erreur" field.
func ErreurLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldErreur, v))
}

// ErreurContains applies the Contains predicate on the "erreur" field.
func ErreurContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldErreur, v))
}

// ErreurHasPrefix applies the HasPrefix predicate on the "erreur" field.
func ErreurHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldErreur, v))
}

// ErreurHasSuffix applies the HasSuffix predicate on the "erreur" field.
func ErreurHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldErreur, v))
}

// ErreurIsNil applies the IsNil predicate on the "erreur" field.
func ErreurIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldErreur))
}

// ErreurNotNil applies the NotNil predicate on the "erreur" field.
func ErreurNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldErreur))
}

// ErreurEqualFold applies the EqualFold predicate on the "erreur" field.
func ErreurEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldErreur, v))
}

// ErreurContainsFold applies the ContainsFold predicate on the "erreur" field.
func ErreurContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldErreur, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldModelName, v))
}

// CoutUsdEQ applies the EQ predicate on the "cout_usd" field.
func CoutUsdEQ(v float64) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldCoutUsd, v))
}

// CoutUsdNEQ applies the NEQ predicate on the "cout_usd" field.
func CoutUsdNEQ(v float64) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldCoutUsd, v))
}

// CoutUsdIn applies the In predicate on the "cout_usd" field.
func CoutUsdIn(vs ...float64) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldCoutUsd, vs...))
}

// CoutUsdNotIn applies the NotIn predicate on the "cout_usd" field.
func CoutUsdNotIn(vs ...float64) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldCoutUsd, vs...))
}

// CoutUsdGT applies the GT predicate on the "cout_usd" field.
func CoutUsdGT(v float64) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldCoutUsd, v))
}

// CoutUsdGTE applies the GTE predicate on the "cout_usd" field.
func CoutUsdGTE(v float64) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldCoutUsd, v))
}

// CoutUsdLT applies the LT predicate on the "cout_usd" field.
func CoutUsdLT(v float64) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldCoutUsd, v))
}

// CoutUsdLTE applies the LTE predicate on the "cout_usd" field.
func CoutUsdLTE(v float64) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldCoutUsd, v))
}

// CoutUsdIsNil applies the IsNil predicate on the "cout_usd" field.
func CoutUsdIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldCoutUsd))
}

// CoutUsdNotNil applies the NotNil predicate on the "cout_usd" field.
func CoutUsdNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldCoutUsd))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldPromptTokens, v))
}

// PromptTokensIsNil applies the IsNil predicate on the "prompt_tokens" field.
func PromptTokensIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldPromptTokens))
}

// PromptTokensNotNil applies the NotNil predicate on the "prompt_tokens" field.
func PromptTokensNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldPromptTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldOutputTokens))
}

// LangueEQ applies the EQ predicate on the "langue" field.
func LangueEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldLangue, v))
}

// LangueNEQ applies the NEQ predicate on the "langue" field.
func LangueNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldLangue, v))
}

// LangueIn applies the In predicate on the "langue" field.
func LangueIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldLangue, vs...))
}

// LangueNotIn applies the NotIn predicate on the "langue" field.
func LangueNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldLangue, vs...))
}

// LangueGT applies the GT predicate on the "langue" field.
func LangueGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldLangue, v))
}

// LangueGTE applies the GTE predicate on the "langue" field.
func LangueGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldLangue, v))
}

// LangueLT applies the LT predicate on the "langue" field.
func LangueLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldLangue, v))
}

// LangueLTE applies the LTE predicate on the "langue" field.
func LangueLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldLangue, v))
}

// LangueContains applies the Contains predicate on the "langue" field.
func LangueContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldLangue, v))
}

// LangueHasPrefix applies the HasPrefix predicate on the "langue" field.
func LangueHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldLangue, v))
}

// LangueHasSuffix applies the HasSuffix predicate on the "langue" field.
func LangueHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldLangue, v))
}

// LangueIsNil applies the IsNil predicate on the "langue" field.
func LangueIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldLangue))
}

// LangueNotNil applies the NotNil predicate on the "langue" field.
func LangueNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldLangue))
}

// LangueEqualFold applies the EqualFold predicate on the "langue" field.
func LangueEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldLangue, v))
}

// LangueContainsFold applies the ContainsFold predicate on the "langue" field.
func LangueContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldLangue, v))
}

// ArchiveRefEQ applies the EQ predicate on the "archive_ref" field.
func ArchiveRefEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldArchiveRef, v))
}

// ArchiveRefNEQ applies the NEQ predicate on the "archive_ref" field.
func ArchiveRefNEQ(v string) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldArchiveRef, v))
}

// ArchiveRefIn applies the In predicate on the "archive_ref" field.
func ArchiveRefIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldArchiveRef, vs...))
}

// ArchiveRefNotIn applies the NotIn predicate on the "archive_ref" field.
func ArchiveRefNotIn(vs ...string) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldArchiveRef, vs...))
}

// ArchiveRefGT applies the GT predicate on the "archive_ref" field.
func ArchiveRefGT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldArchiveRef, v))
}

// ArchiveRefGTE applies the GTE predicate on the "archive_ref" field.
func ArchiveRefGTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldArchiveRef, v))
}

// ArchiveRefLT applies the LT predicate on the "archive_ref" field.
func ArchiveRefLT(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldArchiveRef, v))
}

// ArchiveRefLTE applies the LTE predicate on the "archive_ref" field.
func ArchiveRefLTE(v string) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldArchiveRef, v))
}

// ArchiveRefContains applies the Contains predicate on the "archive_ref" field.
func ArchiveRefContains(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContains(FieldArchiveRef, v))
}

// ArchiveRefHasPrefix applies the HasPrefix predicate on the "archive_ref" field.
func ArchiveRefHasPrefix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasPrefix(FieldArchiveRef, v))
}

// ArchiveRefHasSuffix applies the HasSuffix predicate on the "archive_ref" field.
func ArchiveRefHasSuffix(v string) predicate.Facture {
	return predicate.Facture(sql.FieldHasSuffix(FieldArchiveRef, v))
}

// ArchiveRefIsNil applies the IsNil predicate on the "archive_ref" field.
func ArchiveRefIsNil() predicate.Facture {
	return predicate.Facture(sql.FieldIsNull(FieldArchiveRef))
}

// ArchiveRefNotNil applies the NotNil predicate on the "archive_ref" field.
func ArchiveRefNotNil() predicate.Facture {
	return predicate.Facture(sql.FieldNotNull(FieldArchiveRef))
}

// ArchiveRefEqualFold applies the EqualFold predicate on the "archive_ref" field.
func ArchiveRefEqualFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldEqualFold(FieldArchiveRef, v))
}

// ArchiveRefContainsFold applies the ContainsFold predicate on the "archive_ref" field.
func ArchiveRefContainsFold(v string) predicate.Facture {
	return predicate.Facture(sql.FieldContainsFold(FieldArchiveRef, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Facture {
	return predicate.Facture(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Facture {
	return predicate.Facture(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Facture {
	return predicate.Facture(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Facture) predicate.Facture {
	return predicate.Facture(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Facture) predicate.Facture {
	return predicate.Facture(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Facture) predicate.Facture {
	return predicate.Facture(sql.NotPredicates(p))
}
