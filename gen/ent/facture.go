// Code generated by ent, DO NOT EDIT.

package ent

import (
	"btp-catalogue/gen/ent/facture"
	"btp-catalogue/gen/ent/user"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Facture is the model entity for the Facture schema.
type Facture struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int `json:"user_id,omitempty"`
	// Fournisseur holds the value of the "fournisseur" field.
	Fournisseur *string `json:"fournisseur,omitempty"`
	// NumeroFacture holds the value of the "numero_facture" field.
	NumeroFacture *string `json:"numero_facture,omitempty"`
	// DateFacture holds the value of the "date_facture" field.
	DateFacture *time.Time `json:"date_facture,omitempty"`
	// NbProduits holds the value of the "nb_produits" field.
	NbProduits int `json:"nb_produits,omitempty"`
	// Fichier holds the value of the "fichier" field.
	Fichier string `json:"fichier,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType *string `json:"mime_type,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Statut holds the value of the "statut" field.
	Statut string `json:"statut,omitempty"`
	// Erreur holds the value of the "erreur" field.
	Erreur *string `json:"erreur,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// CoutUsd holds the value of the "cout_usd" field.
	CoutUsd *float64 `json:"cout_usd,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens *int `json:"prompt_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens *int `json:"output_tokens,omitempty"`
	// Langue holds the value of the "langue" field.
	Langue *string `json:"langue,omitempty"`
	// ArchiveRef holds the value of the "archive_ref" field.
	ArchiveRef *string `json:"archive_ref,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FactureQuery when eager-loading is set.
	Edges        FactureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FactureEdges holds the relations/edges for other nodes in the graph.
type FactureEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FactureEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Facture) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facture.FieldCoutUsd:
			values[i] = new(sql.NullFloat64)
		case facture.FieldUserID, facture.FieldNbProduits, facture.FieldPromptTokens, facture.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case facture.FieldFournisseur, facture.FieldNumeroFacture, facture.FieldFichier, facture.FieldMimeType, facture.FieldSource, facture.FieldStatut, facture.FieldErreur, facture.FieldModelName, facture.FieldLangue, facture.FieldArchiveRef:
			values[i] = new(sql.NullString)
		case facture.FieldDateFacture, facture.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case facture.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Facture fields.
func (_m *Facture) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facture.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case facture.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case facture.FieldFournisseur:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fournisseur", values[i])
			} else if value.Valid {
				_m.Fournisseur = new(string)
				*_m.Fournisseur = value.String
			}
		case facture.FieldNumeroFacture:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero_facture", values[i])
			} else if value.Valid {
				_m.NumeroFacture = new(string)
				*_m.NumeroFacture = value.String
			}
		case facture.FieldDateFacture:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_facture", values[i])
			} else if value.Valid {
				_m.DateFacture = new(time.Time)
				*_m.DateFacture = value.Time
			}
		case facture.FieldNbProduits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field nb_produits", values[i])
			} else if value.Valid {
				_m.NbProduits = int(value.Int64)
			}
		case facture.FieldFichier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fichier", values[i])
			} else if value.Valid {
				_m.Fichier = value.String
			}
		case facture.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = new(string)
				*_m.MimeType = value.String
			}
		case facture.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case facture.FieldStatut:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field statut", values[i])
			} else if value.Valid {
				_m.Statut = value.String
			}
		case facture.FieldErreur:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field erreur", values[i])
			} else if value.Valid {
				_m.Erreur = new(string)
				*_m.Erreur = value.String
			}
		case facture.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case facture.FieldCoutUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cout_usd", values[i])
			} else if value.Valid {
				_m.CoutUsd = new(float64)
				*_m.CoutUsd = value.Float64
			}
		case facture.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = new(int)
				*_m.PromptTokens = int(value.Int64)
			}
		case facture.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = new(int)
				*_m.OutputTokens = int(value.Int64)
			}
		case facture.FieldLangue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field langue", values[i])
			} else if value.Valid {
				_m.Langue = new(string)
				*_m.Langue = value.String
			}
		case facture.FieldArchiveRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archive_ref", values[i])
			} else if value.Valid {
				_m.ArchiveRef = new(string)
				*_m.ArchiveRef = value.String
			}
		case facture.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Facture.
// This includes values selected through modifiers, order, etc.
func (_m *Facture) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Facture entity.
func (_m *Facture) QueryUser() *UserQuery {
	return NewFactureClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Facture.
// Note that you need to call Facture.Unwrap() before calling this method if this Facture
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Facture) Update() *FactureUpdateOne {
	return NewFactureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Facture entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Facture) Unwrap() *Facture {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Facture is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Facture) String() string {
	var builder strings.Builder
	builder.WriteString("Facture(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.Fournisseur; v != nil {
		builder.WriteString("fournisseur=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NumeroFacture; v != nil {
		builder.WriteString("numero_facture=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DateFacture; v != nil {
		builder.WriteString("date_facture=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("nb_produits=")
	builder.WriteString(fmt.Sprintf("%v", _m.NbProduits))
	builder.WriteString(", ")
	builder.WriteString("fichier=")
	builder.WriteString(_m.Fichier)
	builder.WriteString(", ")
	if v := _m.MimeType; v != nil {
		builder.WriteString("mime_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("statut=")
	builder.WriteString(_m.Statut)
	builder.WriteString(", ")
	if v := _m.Erreur; v != nil {
		builder.WriteString("erreur=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CoutUsd; v != nil {
		builder.WriteString("cout_usd=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PromptTokens; v != nil {
		builder.WriteString("prompt_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutputTokens; v != nil {
		builder.WriteString("output_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Langue; v != nil {
		builder.WriteString("langue=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArchiveRef; v != nil {
		builder.WriteString("archive_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Factures is a parsable slice of Facture.
type Factures []*Facture
