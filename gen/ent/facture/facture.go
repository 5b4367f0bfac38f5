// Code generated by ent, DO NOT EDIT.

package facture

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the facture type in the database.
	Label = "facture"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFournisseur holds the string denoting the fournisseur field in the database.
	FieldFournisseur = "fournisseur"
	// FieldNumeroFacture holds the string denoting the numero_facture field in the database.
	FieldNumeroFacture = "numero_facture"
	// FieldDateFacture holds the string denoting the date_facture field in the database.
	FieldDateFacture = "date_facture"
	// FieldNbProduits holds the string denoting the nb_produits field in the database.
	FieldNbProduits = "nb_produits"
	// FieldFichier holds the string denoting the fichier field in the database.
	FieldFichier = "fichier"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldStatut holds the string denoting the statut field in the database.
	FieldStatut = "statut"
	// FieldErreur holds the string denoting the erreur field in the database.
	FieldErreur = "erreur"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldCoutUsd holds the string denoting the cout_usd field in the database.
	FieldCoutUsd = "cout_usd"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldLangue holds the string denoting the langue field in the database.
	FieldLangue = "langue"
	// FieldArchiveRef holds the string denoting the archive_ref field in the database.
	FieldArchiveRef = "archive_ref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the facture in the database.
	Table = "factures"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "factures"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for facture fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldFournisseur,
	FieldNumeroFacture,
	FieldDateFacture,
	FieldNbProduits,
	FieldFichier,
	FieldMimeType,
	FieldSource,
	FieldStatut,
	FieldErreur,
	FieldModelName,
	FieldCoutUsd,
	FieldPromptTokens,
	FieldOutputTokens,
	FieldLangue,
	FieldArchiveRef,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNbProduits holds the default value on creation for the "nb_produits" field.
	DefaultNbProduits int
	// FichierValidator is a validator for the "fichier" field. It is called by the builders before save.
	FichierValidator func(string) error
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// StatutValidator is a validator for the "statut" field. It is called by the builders before save.
	StatutValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Facture queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFournisseur orders the results by the fournisseur field.
func ByFournisseur(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFournisseur, opts...).ToFunc()
}

// ByNumeroFacture orders the results by the numero_facture field.
func ByNumeroFacture(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroFacture, opts...).ToFunc()
}

// ByDateFacture orders the results by the date_facture field.
func ByDateFacture(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateFacture, opts...).ToFunc()
}

// ByNbProduits orders the results by the nb_produits field.
func ByNbProduits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNbProduits, opts...).ToFunc()
}

// ByFichier orders the results by the fichier field.
func ByFichier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFichier, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByStatut orders the results by the statut field.
func ByStatut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatut, opts...).ToFunc()
}

// ByErreur orders the results by the erreur field.
func ByErreur(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErreur, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByCoutUsd orders the results by the cout_usd field.
func ByCoutUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoutUsd, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByLangue orders the results by the langue field.
func ByLangue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLangue, opts...).ToFunc()
}

// ByArchiveRef orders the results by the archive_ref field.
func ByArchiveRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchiveRef, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
