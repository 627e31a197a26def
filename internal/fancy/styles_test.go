package fancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/atlanticdynamic/uitree/internal/fancy"
)

// StylesTestSuite is a test suite for testing styles-related functionality
type StylesTestSuite struct {
	suite.Suite
}

// TestStyleVariablesRender verifies that all style variables render their content
func (s *StylesTestSuite) TestStyleVariablesRender() {
	// In test environments colors are usually stripped, so only content is checked
	sampleText := "Test Text"

	assert.Contains(s.T(), fancy.RootStyle.Render(sampleText), sampleText)
	assert.Contains(s.T(), fancy.BranchStyle.Render(sampleText), sampleText)
	assert.Contains(s.T(), fancy.ComponentStyle.Render(sampleText), sampleText)
	assert.Contains(s.T(), fancy.InfoStyle.Render(sampleText), sampleText)
	assert.Contains(s.T(), fancy.MutedStyle.Render(sampleText), sampleText)
	assert.Contains(s.T(), fancy.ErrorStyle.Render(sampleText), sampleText)
}

// TestStyleHelperFunctions tests the helper functions that apply styles
func (s *StylesTestSuite) TestStyleHelperFunctions() {
	sampleText := "Button"

	assert.Equal(s.T(), fancy.ComponentStyle.Render(sampleText), fancy.ComponentText(sampleText))
	assert.Equal(s.T(), fancy.BranchStyle.Render(sampleText), fancy.BranchText(sampleText))
	assert.Equal(s.T(), fancy.InfoStyle.Render(sampleText), fancy.InfoText(sampleText))
	assert.Equal(s.T(), fancy.ErrorStyle.Render(sampleText), fancy.ErrorText(sampleText))
}

// TestStyleFunctionEmptyInput tests that style functions handle empty strings safely
func (s *StylesTestSuite) TestStyleFunctionEmptyInput() {
	require.NotPanics(s.T(), func() {
		fancy.ComponentText("")
		fancy.BranchText("")
		fancy.InfoText("")
	})

	assert.Empty(s.T(), fancy.ComponentText(""))
	assert.Empty(s.T(), fancy.InfoText(""))
}

// Run the styles test suite
func TestStylesSuite(t *testing.T) {
	suite.Run(t, new(StylesTestSuite))
}
