package fanza_test

import (
	"testing"

	"github.com/fwojciec/fanza"
	"github.com/stretchr/testify/assert"
)

func TestProduct_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts product with id and link", func(t *testing.T) {
		t.Parallel()

		p := &fanza.Product{ID: "views_0001", Link: fanza.DetailURL("views_0001")}

		assert.NoError(t, p.Validate())
	})

	t.Run("requires id", func(t *testing.T) {
		t.Parallel()

		p := &fanza.Product{Link: "https://dlsoft.dmm.co.jp/detail/x"}

		assert.Equal(t, fanza.EINVALID, fanza.ErrorCode(p.Validate()))
	})

	t.Run("rejects id with path characters", func(t *testing.T) {
		t.Parallel()

		p := &fanza.Product{ID: "../../tmp", Link: "https://dlsoft.dmm.co.jp/detail/x"}

		assert.Equal(t, fanza.EINVALID, fanza.ErrorCode(p.Validate()))
	})

	t.Run("requires link", func(t *testing.T) {
		t.Parallel()

		p := &fanza.Product{ID: "views_0001"}

		assert.Equal(t, fanza.EINVALID, fanza.ErrorCode(p.Validate()))
	})
}
