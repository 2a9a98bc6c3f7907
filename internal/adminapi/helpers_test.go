package adminapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugChanged(t *testing.T) {
	// renaming an existing slug is rejected by every update handler
	assert.True(t, slugChanged("manali-adventure-escape", "manali-adventure"))
	assert.True(t, slugChanged("manali-adventure-escape", " other-slug "))

	// omitting the slug or echoing it back is allowed
	assert.False(t, slugChanged("manali-adventure-escape", ""))
	assert.False(t, slugChanged("manali-adventure-escape", "   "))
	assert.False(t, slugChanged("manali-adventure-escape", "manali-adventure-escape"))
}
