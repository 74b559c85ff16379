package matlab_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-malt/malt/matlab"
)

func TestAliasTargetCachesConstructorResult(t *testing.T) {
	var calls int32
	fn := matlab.NewFunction("foo", "foo.m", "", 1, 2)
	alias := matlab.NewAlias("foo", "foo.m", func() (matlab.Member, error) {
		atomic.AddInt32(&calls, 1)
		return fn, nil
	})

	target, err := alias.Target()
	require.NoError(t, err)
	assert.Same(t, fn, target)

	_, err = alias.Target()
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "constructor must only run once")
}

func TestAliasTargetSingleflightsConcurrentFirstAccess(t *testing.T) {
	var calls int32
	fn := matlab.NewFunction("foo", "foo.m", "", 1, 2)
	release := make(chan struct{})
	alias := matlab.NewAlias("foo", "foo.m", func() (matlab.Member, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return fn, nil
	})

	var wg sync.WaitGroup
	const n = 8
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = alias.Target()
		}()
	}
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestAliasCyclicChainDetected(t *testing.T) {
	var a, b *matlab.Alias
	a = matlab.NewAlias("a", "path/a", func() (matlab.Member, error) { return b, nil })
	b = matlab.NewAlias("b", "path/b", func() (matlab.Member, error) { return a, nil })

	_, err := a.Target()
	require.Error(t, err)
	var cycleErr *matlab.CyclicAliasError
	require.ErrorAs(t, err, &cycleErr)
}

func TestAliasMembersRerootedUnderAlias(t *testing.T) {
	cls := matlab.NewClass("Thing", "Thing.m", "", 1, 5, nil)
	method := matlab.NewFunction("doStuff", "Thing.m", "", 2, 3)
	method.SetParent(cls)
	cls.Members().Set("doStuff", method)

	alias := matlab.NewAlias("Thing", "pkg.Thing", func() (matlab.Member, error) { return cls, nil })
	alias.SetParent(nil)

	members := alias.Members()
	member, ok := members.Get("doStuff")
	require.True(t, ok)

	aliasedMethod, ok := member.(*matlab.Alias)
	require.True(t, ok)
	assert.Equal(t, "Thing.doStuff", aliasedMethod.CanonicalPath())
}
