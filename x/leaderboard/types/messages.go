package types

import (
	"context"
	"fmt"
)

// MsgSaveScore submits a finished game's score for the signing wallet.
// ReplayData is optional; it is mandatory when the score beats the
// wallet's stored high score.
type MsgSaveScore struct {
	Creator    string  `json:"creator"`
	Score      uint32  `json:"score"`
	ReplayData *string `json:"replay_data,omitempty"`
	Timestamp  uint64  `json:"timestamp"`
}

type MsgSaveScoreResponse struct {
	IsNewHighScore bool         `json:"is_new_high_score"`
	Record         PlayerRecord `json:"record"`
}

// MsgRegisterPlayer sets, keeps, or clears the signing wallet's display
// name. The three request states are distinct: Clear set wipes the stored
// name, a non-nil DisplayName proposes a new one, and both unset leaves
// the name untouched.
type MsgRegisterPlayer struct {
	Creator     string  `json:"creator"`
	DisplayName *string `json:"display_name,omitempty"`
	Clear       bool    `json:"clear,omitempty"`
}

type MsgRegisterPlayerResponse struct {
	Record PlayerRecord `json:"record"`
}

// MsgUpdateParams replaces module params. Authority gated.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer is the mutation surface of the module. Both direct calls and
// messages replayed from the sequencing log go through these handlers;
// there is no second validation path.
type MsgServer interface {
	SaveScore(ctx context.Context, msg *MsgSaveScore) (*MsgSaveScoreResponse, error)
	RegisterPlayer(ctx context.Context, msg *MsgRegisterPlayer) (*MsgRegisterPlayerResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Messages are hand-encoded JSON; the stubs below satisfy sdk.Msg until
// proto definitions exist.

func (m *MsgSaveScore) Reset()         { *m = MsgSaveScore{} }
func (m *MsgSaveScore) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSaveScore) ProtoMessage()    {}

func (m *MsgRegisterPlayer) Reset()         { *m = MsgRegisterPlayer{} }
func (m *MsgRegisterPlayer) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgRegisterPlayer) ProtoMessage()    {}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateParams) ProtoMessage()    {}
