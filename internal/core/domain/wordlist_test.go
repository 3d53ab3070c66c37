package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWordList_Unresolved(t *testing.T) {
	list := DefaultWordList()

	assert.Equal(t, WordListDefault, list.Source())
	assert.False(t, list.Resolved())
}

func TestDefaultWordList_ResolveDefault(t *testing.T) {
	list := DefaultWordList().ResolveDefault([]string{"cat", "dog"})

	assert.True(t, list.Resolved())
	assert.Equal(t, 2, list.Len())
	assert.True(t, list.Allows("cat"))
	assert.False(t, list.Allows("cow"))
}

func TestResolveDefault_NoOpForOtherVariants(t *testing.T) {
	list := CustomWordList([]string{"cat"}).ResolveDefault([]string{"dog"})

	assert.Equal(t, WordListCustom, list.Source())
	assert.True(t, list.Allows("cat"))
	assert.False(t, list.Allows("dog"))
}

func TestDisabledWordList_AllowsEverything(t *testing.T) {
	list := DisabledWordList()

	assert.Equal(t, WordListDisabled, list.Source())
	assert.True(t, list.Resolved())
	assert.True(t, list.Allows("cat"))
	assert.True(t, list.Allows("zzzzz"))
	assert.True(t, list.Allows(""))
}

func TestCustomWordList_Membership(t *testing.T) {
	list := CustomWordList([]string{"cat", "dog"})

	assert.True(t, list.Allows("cat"))
	assert.True(t, list.Allows("dog"))
	assert.False(t, list.Allows("cot"))
}

func TestCustomWordList_EmptyActsAsNoOp(t *testing.T) {
	list := CustomWordList(nil)

	assert.Equal(t, WordListCustom, list.Source())
	assert.True(t, list.Allows("anything"))
}

func TestCustomWordList_CollapsesDuplicates(t *testing.T) {
	list := CustomWordList([]string{"cat", "cat", "dog"})

	assert.Equal(t, 2, list.Len())
}

func TestWordList_CaseSensitive(t *testing.T) {
	list := CustomWordList([]string{"Cat"})

	assert.True(t, list.Allows("Cat"))
	assert.False(t, list.Allows("cat"))
	assert.False(t, list.Allows("CAT"))
}
