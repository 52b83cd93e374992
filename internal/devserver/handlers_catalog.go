package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListRestaurants(c *gin.Context) {
	restaurants, err := s.catalog.Restaurants(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurants": restaurants})
}

func (s *Server) handleGetRestaurant(c *gin.Context) {
	r, err := s.catalog.Restaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondErr(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found", nil)
			return
		}
		respondErr(c, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurant": r})
}

func (s *Server) handleGetMenu(c *gin.Context) {
	mn, err := s.catalog.MenuFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondErr(c, http.StatusNotFound, "NOT_FOUND", "Menu not found", nil)
			return
		}
		respondErr(c, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"menu": mn})
}
