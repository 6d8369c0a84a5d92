package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/fanza"
	main "github.com/fwojciec/fanza/cmd/fanza"
	"github.com/fwojciec/fanza/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Products: &mock.ProductService{
				DeleteProductFn: func(context.Context, string) error {
					t.Fatal("delete should not be called")
					return nil
				},
			},
		}

		err := (&main.DeleteCmd{ID: "views_0001"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, fanza.EINVALID, fanza.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes product", func(t *testing.T) {
		t.Parallel()

		var deleted string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Products: &mock.ProductService{
				DeleteProductFn: func(_ context.Context, id string) error {
					deleted = id
					return nil
				},
			},
		}

		err := (&main.DeleteCmd{ID: "views_0001", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "views_0001", deleted)
		assert.Contains(t, stdout.String(), `Deleted product "views_0001"`)
	})

	t.Run("reports missing product", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Products: &mock.ProductService{
				DeleteProductFn: func(context.Context, string) error {
					return fanza.Errorf(fanza.ENOTFOUND, "product not found")
				},
			},
		}

		err := (&main.DeleteCmd{ID: "missing_1", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, fanza.ENOTFOUND, fanza.ErrorCode(err))
		assert.Contains(t, stderr.String(), `product "missing_1" not found`)
	})
}
