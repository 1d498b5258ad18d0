package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) listVendors(c *gin.Context) {
	s.data(c, http.StatusOK, s.store.Vendors())
}

func (s *Server) getVendor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	vendor, err := s.store.Vendor(id)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, vendor)
}

func (s *Server) vendorsNearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		s.fail(c, http.StatusBadRequest, "lat and lng are required")
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "5"), 64)
	if err != nil || radius <= 0 {
		s.fail(c, http.StatusBadRequest, "radius must be a positive number")
		return
	}
	s.data(c, http.StatusOK, s.store.VendorsNearby(lat, lng, radius))
}

func (s *Server) listCuisines(c *gin.Context) {
	s.data(c, http.StatusOK, s.store.Cuisines())
}

func (s *Server) getCuisine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid cuisine id")
		return
	}
	cuisine, err := s.store.Cuisine(id)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, cuisine)
}

func (s *Server) searchCuisines(c *gin.Context) {
	s.data(c, http.StatusOK, s.store.SearchCuisines(c.Query("q")))
}
