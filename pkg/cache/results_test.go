package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/dataset"
)

func TestKey_CaseInsensitiveAndDistinct(t *testing.T) {
	a := Key(dataset.Query{Text: "Card", Page: 1, API: "all", Severity: "all"})
	b := Key(dataset.Query{Text: "card", Page: 1, API: "all", Severity: "all"})
	assert.Equal(t, a, b)

	c := Key(dataset.Query{Text: "card", Page: 2, API: "all", Severity: "all"})
	assert.NotEqual(t, a, c)

	d := Key(dataset.Query{Text: "card", Page: 1, API: "Stripe", Severity: "all"})
	assert.NotEqual(t, a, d)
}

func TestResultCache_NilClientIsNoop(t *testing.T) {
	rc := NewResultCache(nil, time.Second, zap.NewNop())
	ctx := context.Background()

	key := Key(dataset.Query{Text: "card", Page: 1})
	rc.Set(ctx, key, dataset.Result{Total: 5})

	_, ok := rc.Get(ctx, key)
	assert.False(t, ok)
}
