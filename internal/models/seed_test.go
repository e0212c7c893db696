package models_test

import (
	"github.com/clearspend/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestEnsureDefaultCategories() {
	require.NoError(suite.T(), models.EnsureDefaultCategories(models.DB))

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(12), count)

	var income int64
	require.NoError(suite.T(), models.DB.Model(&models.Category{}).Where("category_type = ?", models.CategoryTypeIncome).Count(&income).Error)
	assert.Equal(suite.T(), int64(4), income)

	var expense int64
	require.NoError(suite.T(), models.DB.Model(&models.Category{}).Where("category_type = ?", models.CategoryTypeExpense).Count(&expense).Error)
	assert.Equal(suite.T(), int64(8), expense)

	var salary models.Category
	require.NoError(suite.T(), models.DB.Where("name = ?", "Salary").First(&salary).Error)
	assert.Equal(suite.T(), "#10B981", salary.Color)
	assert.Equal(suite.T(), models.CategoryTypeIncome, salary.CategoryType)
}

func (suite *TestSuiteStandard) TestEnsureDefaultCategoriesIdempotent() {
	require.NoError(suite.T(), models.EnsureDefaultCategories(models.DB))
	require.NoError(suite.T(), models.EnsureDefaultCategories(models.DB))

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(12), count)
}

func (suite *TestSuiteStandard) TestEnsureDefaultCategoriesKeepsChanges() {
	require.NoError(suite.T(), models.EnsureDefaultCategories(models.DB))

	var housing models.Category
	require.NoError(suite.T(), models.DB.Where("name = ?", "Housing").First(&housing).Error)

	require.NoError(suite.T(), models.DB.Model(&housing).Select("Color").Updates(models.Category{Color: "#123456"}).Error)

	// Running the seed again must not reset user changes
	require.NoError(suite.T(), models.EnsureDefaultCategories(models.DB))

	require.NoError(suite.T(), models.DB.First(&housing, housing.ID).Error)
	assert.Equal(suite.T(), "#123456", housing.Color)
}
