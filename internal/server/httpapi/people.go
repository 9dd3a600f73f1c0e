package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/memoriam-app/memoriam/internal/server/models"
	"github.com/memoriam-app/memoriam/internal/server/services"
)

// formUpload reads one optional multipart file field into memory.
func formUpload(c *gin.Context, field string) (*services.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &services.Upload{Name: fh.Filename, Data: data}, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

func (s *Server) listPeople(c *gin.Context) {
	people, err := s.people.List(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	if people == nil {
		people = []*models.Person{}
	}
	c.JSON(http.StatusOK, people)
}

func (s *Server) createPerson(c *gin.Context) {
	p := &models.Person{
		Name:      c.PostForm("name"),
		DOB:       c.PostForm("dob"),
		About:     c.PostForm("about"),
		Primary:   c.PostForm("primary"),
		Secondary: c.PostForm("secondary"),
		Gender:    c.PostForm("gender"),
	}

	portrait, err := formUpload(c, "photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload"})
		return
	}

	created, err := s.people.Add(c.Request.Context(), p, portrait, currentUserID(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) getPerson(c *gin.Context) {
	p, err := s.people.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) updatePerson(c *gin.Context) {
	var upd models.PersonUpdate
	var portrait *services.Upload

	if isMultipart(c) {
		setIfPosted := func(field string, dst **string) {
			if v, ok := c.GetPostForm(field); ok {
				*dst = &v
			}
		}
		setIfPosted("name", &upd.Name)
		setIfPosted("dob", &upd.DOB)
		setIfPosted("about", &upd.About)
		setIfPosted("primary", &upd.Primary)
		setIfPosted("secondary", &upd.Secondary)
		setIfPosted("gender", &upd.Gender)

		var err error
		if portrait, err = formUpload(c, "photo"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload"})
			return
		}
	} else if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := s.people.Update(c.Request.Context(), c.Param("id"), &upd, portrait, currentUserID(c)); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addGalleryImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}

	var files []*services.Upload
	for _, fh := range form.File["photos"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload"})
			return
		}
		files = append(files, &services.Upload{Name: fh.Filename, Data: data})
	}

	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files"})
		return
	}

	urls, err := s.people.AddGalleryImages(c.Request.Context(), c.Param("id"), currentUserID(c), files)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}
