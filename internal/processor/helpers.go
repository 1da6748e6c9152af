package processor

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/store/schema"
)

// messageFields maps the signed envelope of a message onto the shared
// table columns.
func messageFields(msg *domain.Message) schema.MessageFields {
	return schema.MessageFields{
		MessageType:     msg.Data.Type,
		Fid:             msg.Data.Fid,
		Timestamp:       msg.Time(),
		Network:         msg.Data.Network,
		Hash:            msg.Hash,
		HashScheme:      msg.HashScheme,
		Signature:       msg.Signature,
		SignatureScheme: msg.SignatureScheme,
		Signer:          msg.Signer,
	}
}

// toJSON marshals v into a JSONB column value. Nil (or unmarshalable)
// values become SQL NULL rather than failing the row write.
func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	if string(data) == "null" {
		return nil
	}
	return datatypes.JSON(data)
}
