package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/vaultclient"
	vaultMocks "github.com/allisson/vaultclient/internal/vault/usecase/mocks"
)

func TestRunInsert(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("text-output", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Insert", ctx, mock.MatchedBy(func(req *vaultclient.InsertRequest) bool {
			return req.Table == "cards" && len(req.Values) == 1 && req.Values[0]["name"] == "ada" && req.ReturnTokens
		})).Return(&vaultclient.InsertResponse{
			InsertedFields: []map[string]any{{"skyflow_id": "id-1", "name": "tok-1"}},
		}, nil)

		var out bytes.Buffer
		err := RunInsert(ctx, mockVault, logger, &out, InsertOptions{
			Table:        "cards",
			Values:       `[{"name":"ada"}]`,
			ReturnTokens: true,
			Format:       "text",
		})

		require.NoError(t, err)
		require.Contains(t, out.String(), "[0] name=tok-1 skyflow_id=id-1")
		mockVault.AssertExpectations(t)
	})

	t.Run("partial-batch-prints-and-fails", func(t *testing.T) {
		partial := &vaultclient.PartialBatchError{Operation: "insert"}
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Insert", ctx, mock.Anything).Return(&vaultclient.InsertResponse{
			InsertedFields: []map[string]any{{"skyflow_id": "id-1"}},
			Errors:         []vaultclient.RecordError{{Index: 1, Error: "bad field", HTTPCode: 400}},
		}, partial)

		var out bytes.Buffer
		err := RunInsert(ctx, mockVault, logger, &out, InsertOptions{
			Table:           "cards",
			Values:          `[{"name":"ada"},{"bad":1}]`,
			ContinueOnError: true,
			Format:          "text",
		})

		require.ErrorIs(t, err, vaultclient.ErrPartialBatch)
		require.Contains(t, out.String(), "skyflow_id=id-1")
		require.Contains(t, out.String(), "error: record 1: bad field (http 400)")
	})

	t.Run("invalid-values", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		err := RunInsert(ctx, mockVault, logger, &bytes.Buffer{}, InsertOptions{
			Table:  "cards",
			Values: `{"name":"ada"}`,
			Format: "text",
		})

		require.Error(t, err)
		require.Contains(t, err.Error(), "values must be a JSON array of objects")
		mockVault.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunInsert(ctx, &vaultMocks.MockVaultUseCase{}, logger, &bytes.Buffer{}, InsertOptions{Format: "xml"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})

	t.Run("vault-error", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Insert", ctx, mock.Anything).Return(nil, vaultclient.ErrTransport)

		err := RunInsert(ctx, mockVault, logger, &bytes.Buffer{}, InsertOptions{
			Table:  "cards",
			Values: `[{"name":"ada"}]`,
			Format: "json",
		})

		require.ErrorIs(t, err, vaultclient.ErrTransport)
		require.Contains(t, err.Error(), "failed to insert records")
	})
}

func TestRunGet(t *testing.T) {
	ctx := context.Background()

	t.Run("json-output", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Get", ctx, &vaultclient.GetRequest{
			Table:         "cards",
			IDs:           []string{"id-1"},
			RedactionType: vaultclient.RedactionPlainText,
		}).Return(&vaultclient.GetResponse{
			Data: []map[string]any{{"skyflow_id": "id-1", "name": "ada"}},
		}, nil)

		var out bytes.Buffer
		err := RunGet(ctx, mockVault, &out, GetOptions{
			Table:         "cards",
			IDs:           []string{"id-1"},
			RedactionType: "PLAIN_TEXT",
			Format:        "json",
		})

		require.NoError(t, err)
		require.Contains(t, out.String(), `"name": "ada"`)
		mockVault.AssertExpectations(t)
	})

	t.Run("vault-error", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Get", ctx, mock.Anything).Return(nil, errors.New("boom"))

		err := RunGet(ctx, mockVault, &bytes.Buffer{}, GetOptions{Table: "cards", Format: "text"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to get records")
	})
}

func TestRunUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Update", ctx, &vaultclient.UpdateRequest{
			Table: "cards",
			Data:  map[string]any{"skyflow_id": "id-1", "name": "grace"},
		}).Return(&vaultclient.UpdateResponse{SkyflowID: "id-1"}, nil)

		var out bytes.Buffer
		err := RunUpdate(ctx, mockVault, &out, "cards", "id-1", `{"name":"grace"}`, false, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Updated record id-1")
		mockVault.AssertExpectations(t)
	})

	t.Run("invalid-data", func(t *testing.T) {
		err := RunUpdate(ctx, &vaultMocks.MockVaultUseCase{}, &bytes.Buffer{}, "cards", "id-1", `[1]`, false, "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "data must be a JSON object")
	})
}

func TestRunDelete(t *testing.T) {
	ctx := context.Background()
	mockVault := &vaultMocks.MockVaultUseCase{}
	mockVault.On("Delete", ctx, &vaultclient.DeleteRequest{Table: "cards", IDs: []string{"id-1", "id-2"}}).
		Return(&vaultclient.DeleteResponse{DeletedIDs: []string{"id-1", "id-2"}}, nil)

	var out bytes.Buffer
	err := RunDelete(ctx, mockVault, &out, "cards", []string{"id-1", "id-2"}, "text")

	require.NoError(t, err)
	require.Contains(t, out.String(), "Deleted 2 record(s)")
	mockVault.AssertExpectations(t)
}

func TestRunQuery(t *testing.T) {
	ctx := context.Background()
	mockVault := &vaultMocks.MockVaultUseCase{}
	mockVault.On("Query", ctx, &vaultclient.QueryRequest{Query: "select * from cards"}).
		Return(&vaultclient.QueryResponse{Fields: []map[string]any{{"name": "ada"}}}, nil)

	var out bytes.Buffer
	err := RunQuery(ctx, mockVault, &out, "select * from cards", "text")

	require.NoError(t, err)
	require.Equal(t, "[0] name=ada\n", out.String())
	mockVault.AssertExpectations(t)
}
