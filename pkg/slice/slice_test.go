// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/uibutton/pkg/slice"
)

/*
TestMapFilter checks the two helpers and their nil handling.
*/
func TestMapFilter(t *testing.T) {
	assert.Nil(t, slice.Map[string, string](nil, strings.ToUpper))
	assert.Equal(t, []string{"MD", "LG"}, slice.Map([]string{"md", "lg"}, strings.ToUpper))

	filtered := slice.Filter([]string{"Enter", "Space", "Escape"}, func(k string) bool {
		return strings.HasPrefix(k, "E")
	})
	assert.Equal(t, []string{"Enter", "Escape"}, filtered)
	assert.NotNil(t, slice.Filter[string](nil, func(string) bool { return true }))
}
