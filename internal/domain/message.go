package domain

import (
	"encoding/hex"
	"time"
)

// Fid is the numeric account identifier in the hub network.
type Fid uint64

// MessageType mirrors the hub protocol's message type codes.
type MessageType int16

const (
	MessageTypeCastAdd            MessageType = 1
	MessageTypeCastRemove         MessageType = 2
	MessageTypeReactionAdd        MessageType = 3
	MessageTypeReactionRemove     MessageType = 4
	MessageTypeLinkAdd            MessageType = 5
	MessageTypeLinkRemove         MessageType = 6
	MessageTypeVerificationAdd    MessageType = 7
	MessageTypeVerificationRemove MessageType = 8
	MessageTypeUserDataAdd        MessageType = 11
)

// MessageKind is the closed set of message families the materializer
// dispatches on. Every MessageType maps to exactly one kind.
type MessageKind string

const (
	KindCast         MessageKind = "cast"
	KindReaction     MessageKind = "reaction"
	KindLink         MessageKind = "link"
	KindVerification MessageKind = "verification"
	KindUserData     MessageKind = "user_data"
	KindUnknown      MessageKind = "unknown"
)

// MessageState describes the desired materialized state of a message.
type MessageState string

const (
	MessageStateCreated MessageState = "created"
	MessageStateDeleted MessageState = "deleted"
)

// ReactionType mirrors the hub protocol's reaction type codes.
type ReactionType int16

const (
	ReactionTypeLike   ReactionType = 1
	ReactionTypeRecast ReactionType = 2
)

// UserDataType mirrors the hub protocol's user data field codes.
type UserDataType int16

const (
	UserDataTypeAvatar      UserDataType = 1
	UserDataTypeDisplayName UserDataType = 2
	UserDataTypeBio         UserDataType = 3
	UserDataTypeUsername    UserDataType = 6
)

// CastID references a cast by its author and content hash.
type CastID struct {
	Fid  Fid    `json:"fid"`
	Hash []byte `json:"hash"`
}

// Embed is a single embedded resource in a cast: either a URL or a
// quoted cast, never both.
type Embed struct {
	URL    string  `json:"url,omitempty"`
	CastID *CastID `json:"cast_id,omitempty"`
}

// CastBody is the payload of a cast add message. Removes carry only the
// target hash in the same body.
type CastBody struct {
	Text              string   `json:"text"`
	Embeds            []Embed  `json:"embeds,omitempty"`
	Mentions          []Fid    `json:"mentions,omitempty"`
	MentionsPositions []uint32 `json:"mentions_positions,omitempty"`
	ParentURL         string   `json:"parent_url,omitempty"`
	ParentCastID      *CastID  `json:"parent_cast_id,omitempty"`
}

// ReactionBody is the payload of a reaction message.
type ReactionBody struct {
	Type         ReactionType `json:"type"`
	TargetCastID *CastID      `json:"target_cast_id,omitempty"`
	TargetURL    string       `json:"target_url,omitempty"`
}

// LinkBody is the payload of a link message. Type is an open string in
// the protocol; "follow" is the only type this indexer aggregates on.
type LinkBody struct {
	Type      string `json:"type"`
	TargetFid Fid    `json:"target_fid"`
}

// VerificationBody is the address-ownership claim of a verification.
type VerificationBody struct {
	Address        []byte `json:"address"`
	ClaimSignature []byte `json:"claim_signature"`
	BlockHash      []byte `json:"block_hash"`
	Protocol       int16  `json:"protocol"`
}

// UserDataBody is the payload of a user data message.
type UserDataBody struct {
	Type  UserDataType `json:"type"`
	Value string       `json:"value"`
}

// MessageData is the signed inner payload of a message. Exactly one of
// the body fields is set, matching the message type.
type MessageData struct {
	Type      MessageType `json:"type"`
	Fid       Fid         `json:"fid"`
	Timestamp uint32      `json:"timestamp"` // seconds since the hub epoch
	Network   int16       `json:"network"`

	CastBody         *CastBody         `json:"cast_body,omitempty"`
	ReactionBody     *ReactionBody     `json:"reaction_body,omitempty"`
	LinkBody         *LinkBody         `json:"link_body,omitempty"`
	VerificationBody *VerificationBody `json:"verification_body,omitempty"`
	UserDataBody     *UserDataBody     `json:"user_data_body,omitempty"`
}

// Message is one immutable, signed social action record.
type Message struct {
	Data            MessageData `json:"data"`
	Hash            []byte      `json:"hash"`
	HashScheme      int16       `json:"hash_scheme"`
	Signature       []byte      `json:"signature"`
	SignatureScheme int16       `json:"signature_scheme"`
	Signer          []byte      `json:"signer"`
}

// Kind maps the protocol message type onto the dispatch family.
func (m *Message) Kind() MessageKind {
	switch m.Data.Type {
	case MessageTypeCastAdd, MessageTypeCastRemove:
		return KindCast
	case MessageTypeReactionAdd, MessageTypeReactionRemove:
		return KindReaction
	case MessageTypeLinkAdd, MessageTypeLinkRemove:
		return KindLink
	case MessageTypeVerificationAdd, MessageTypeVerificationRemove:
		return KindVerification
	case MessageTypeUserDataAdd:
		return KindUserData
	default:
		return KindUnknown
	}
}

// State derives the desired materialized state from the message type:
// add types create, remove types delete.
func (m *Message) State() MessageState {
	switch m.Data.Type {
	case MessageTypeCastRemove, MessageTypeReactionRemove,
		MessageTypeLinkRemove, MessageTypeVerificationRemove:
		return MessageStateDeleted
	default:
		return MessageStateCreated
	}
}

// HashHex returns the 0x-prefixed hex encoding of the content hash.
func (m *Message) HashHex() string {
	return HashHex(m.Hash)
}

// Time converts the message's hub-epoch timestamp to wall-clock time.
func (m *Message) Time() time.Time {
	return EpochToTime(m.Data.Timestamp)
}

// HashHex encodes a content hash as a 0x-prefixed hex string.
func HashHex(hash []byte) string {
	return "0x" + hex.EncodeToString(hash)
}
