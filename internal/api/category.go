package api

import (
	"errors"
	"net/http"

	"reciplette/internal/domain"
	"reciplette/internal/store"
	"reciplette/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListCategoriesHandler renders the category list
func ListCategoriesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ListCategories(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedListCategories, err, nil)
			return
		}
		c.HTML(http.StatusOK, web.TemplateCategory, gin.H{"category": categories})
	}
}

// AddCategoryFormHandler renders an empty category form
func AddCategoryFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, web.TemplateAddCategory, gin.H{"category": domain.Category{}})
	}
}

func AddCategoryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form CategoryForm
		if err := c.ShouldBind(&form); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedAddCategory, err, nil)
			return
		}
		category, err := s.CreateCategory(c.Request.Context(), form.CategoryName)
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedAddCategory, err, logrus.Fields{"category_name": form.CategoryName})
			return
		}
		logrus.WithFields(logrus.Fields{
			"category_id":   category.CategoryID,
			"category_name": category.CategoryName,
		}).Info("Category created")
		redirect(c, "/category")
	}
}

func EditCategoryFormHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			fail(c, http.StatusNotFound, domain.MessageCategoryNotFound, nil, logrus.Fields{"category_id": c.Param("id")})
			return
		}
		category, err := s.FindCategory(c.Request.Context(), id)
		if errors.Is(err, domain.ErrCategoryNotFound) {
			fail(c, http.StatusNotFound, domain.MessageCategoryNotFound, nil, logrus.Fields{"category_id": id})
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedCategoryByID, err, logrus.Fields{"category_id": id})
			return
		}
		c.HTML(http.StatusOK, web.TemplateEditCategory, gin.H{"category": category})
	}
}

func EditCategoryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			fail(c, http.StatusNotFound, domain.MessageCategoryNotFound, nil, logrus.Fields{"category_id": c.Param("id")})
			return
		}
		var form CategoryForm
		if err := c.ShouldBind(&form); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedUpdateCategory, err, logrus.Fields{"category_id": id})
			return
		}
		if err := s.RenameCategory(c.Request.Context(), id, form.CategoryName); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedUpdateCategory, err, logrus.Fields{"category_id": id})
			return
		}
		redirect(c, "/category")
	}
}

func DeleteCategoryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form CategoryIDForm
		if err := c.ShouldBind(&form); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedDeleteCategory, err, nil)
			return
		}
		if err := s.DeleteCategory(c.Request.Context(), form.CategoryID); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedDeleteCategory, err, logrus.Fields{"category_id": form.CategoryID})
			return
		}
		logrus.WithField("category_id", form.CategoryID).Info("Category deleted")
		redirect(c, "/category")
	}
}
