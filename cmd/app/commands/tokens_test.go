package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/vaultclient"
	vaultMocks "github.com/allisson/vaultclient/internal/vault/usecase/mocks"
)

func TestRunTokenize(t *testing.T) {
	ctx := context.Background()
	mockVault := &vaultMocks.MockVaultUseCase{}
	mockVault.On("Tokenize", ctx, &vaultclient.TokenizeRequest{Values: []vaultclient.ColumnValue{
		{Value: "4111", ColumnGroup: "cards"},
		{Value: "4222", ColumnGroup: "cards"},
	}}).Return(&vaultclient.TokenizeResponse{Tokens: []string{"tok-1", "tok-2"}}, nil)

	var out bytes.Buffer
	err := RunTokenize(ctx, mockVault, &out, []string{"4111", "4222"}, "cards", "text")

	require.NoError(t, err)
	require.Equal(t, "tok-1\ntok-2\n", out.String())
	mockVault.AssertExpectations(t)
}

func TestRunDetokenize(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Detokenize", ctx, &vaultclient.DetokenizeRequest{
			Data: []vaultclient.DetokenizeData{{Token: "tok-1", RedactionType: vaultclient.RedactionMasked}},
		}).Return(&vaultclient.DetokenizeResponse{
			DetokenizedFields: []vaultclient.DetokenizedField{{Token: "tok-1", Value: "XXXX1111"}},
		}, nil)

		var out bytes.Buffer
		err := RunDetokenize(ctx, mockVault, &out, []string{"tok-1"}, "MASKED", false, "text")

		require.NoError(t, err)
		require.Equal(t, "tok-1=XXXX1111\n", out.String())
		mockVault.AssertExpectations(t)
	})

	t.Run("partial-json-output", func(t *testing.T) {
		mockVault := &vaultMocks.MockVaultUseCase{}
		mockVault.On("Detokenize", ctx, mock.Anything).Return(&vaultclient.DetokenizeResponse{
			DetokenizedFields: []vaultclient.DetokenizedField{{Token: "tok-1", Value: "4111"}},
			Errors:            []vaultclient.RecordError{{Index: 1, Token: "tok-2", Error: "Token Not Found"}},
		}, &vaultclient.PartialBatchError{Operation: "detokenize"})

		var out bytes.Buffer
		err := RunDetokenize(ctx, mockVault, &out, []string{"tok-1", "tok-2"}, "", true, "json")

		require.ErrorIs(t, err, vaultclient.ErrPartialBatch)
		require.Contains(t, out.String(), `"Token Not Found"`)
	})
}

func TestRunUploadFile(t *testing.T) {
	ctx := context.Background()
	mockVault := &vaultMocks.MockVaultUseCase{}
	mockVault.On("UploadFile", ctx, &vaultclient.FileUploadRequest{
		Table:      "cards",
		SkyflowID:  "id-1",
		ColumnName: "receipt",
		FilePath:   "/tmp/receipt.pdf",
	}).Return(&vaultclient.FileUploadResponse{SkyflowID: "id-1"}, nil)

	var out bytes.Buffer
	err := RunUploadFile(ctx, mockVault, &out, "cards", "id-1", "receipt", "/tmp/receipt.pdf", "text")

	require.NoError(t, err)
	require.Contains(t, out.String(), "Uploaded /tmp/receipt.pdf to record id-1")
	mockVault.AssertExpectations(t)
}
