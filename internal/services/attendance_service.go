package services

import (
	"context"
	"log"
	"math"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/metrics"
	"hrms-backend/internal/models"
)

// Geofence constants: the authorized site coordinate and how far from
// it a check-in still counts as on-site.
const (
	earthRadiusMeters = 6371000.0
)

// Verdict status strings. The emoji markers are part of the API
// contract; the SPA renders them verbatim.
const (
	statusMatchedInside    = "✅ Face matched & inside geo-fence"
	statusMatchedOutside   = "⚠️ Face matched but outside geo-fence"
	statusUnmatchedInside  = "❌ Face not matched but inside geo-fence"
	statusUnmatchedOutside = "❌ Face not matched and outside geo-fence"

	noteStoreError = "Check AWS credentials and S3 bucket configuration"
	noteStoreEmpty = "Upload employee photos to S3 bucket for face recognition"
)

// PhotoLister lists the reference photo keys to compare against.
type PhotoLister interface {
	ListPhotoKeys(ctx context.Context) ([]string, error)
}

// FaceComparer compares one stored photo against the live capture and
// returns the similarity of the first match above threshold (0 if none).
type FaceComparer interface {
	Compare(ctx context.Context, storedKey string, capture []byte) (float64, error)
}

// AttendanceStore is the ledger persistence surface.
type AttendanceStore interface {
	Insert(ctx context.Context, e *models.AttendanceEvent) (*models.AttendanceEvent, error)
	ListAll(ctx context.Context) ([]models.AttendanceEvent, error)
}

// AttendanceService runs the check-in validation (geofence + face
// match) and keeps the append-only ledger.
type AttendanceService struct {
	photos  PhotoLister
	faces   FaceComparer
	ledger  AttendanceStore
	siteLat float64
	siteLon float64
	radiusM float64
}

func NewAttendanceService(photos PhotoLister, faces FaceComparer, ledger AttendanceStore, siteLat, siteLon, radiusM float64) *AttendanceService {
	return &AttendanceService{
		photos:  photos,
		faces:   faces,
		ledger:  ledger,
		siteLat: siteLat,
		siteLon: siteLon,
		radiusM: radiusM,
	}
}

// Haversine returns the great-circle distance in meters between two
// coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	rLat1 := toRad(lat1)
	rLat2 := toRad(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(rLat1)*math.Cos(rLat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Validate runs the geofence check and the face match and composes the
// verdict. Photo store failures never fail the call; they produce a
// degraded verdict the caller must inspect.
func (s *AttendanceService) Validate(ctx context.Context, lat, lon float64, capture []byte) *models.ValidationVerdict {
	distance := Haversine(lat, lon, s.siteLat, s.siteLon)
	locationOK := distance <= s.radiusM

	locationWord := "outside geo-fence"
	if locationOK {
		locationWord = "ok"
	}

	keys, err := s.photos.ListPhotoKeys(ctx)
	if err != nil {
		log.Printf("[Validator] Photo listing failed: %v", err)
		return &models.ValidationVerdict{
			FaceMatched: false,
			MatchedWith: nil,
			Similarity:  0,
			LocationOK:  locationOK,
			DistanceM:   round2(distance),
			Status:      "⚠️ S3 error. Location " + locationWord,
			Note:        noteStoreError,
		}
	}
	if len(keys) == 0 {
		return &models.ValidationVerdict{
			FaceMatched: false,
			MatchedWith: nil,
			Similarity:  0,
			LocationOK:  locationOK,
			DistanceM:   round2(distance),
			Status:      "⚠️ No employee photos found in S3. Location " + locationWord,
			Note:        noteStoreEmpty,
		}
	}

	// First match wins: candidates are tried in listing order and the
	// loop stops at the first similarity above threshold. Comparison
	// errors on individual candidates are skipped.
	var (
		faceMatched bool
		matchedKey  *string
		similarity  float64
	)
	for _, key := range keys {
		sim, err := s.faces.Compare(ctx, key, capture)
		if err != nil {
			log.Printf("[Validator] Compare failed for %s: %v", key, err)
			metrics.FaceComparisonsTotal.WithLabelValues("error").Inc()
			continue
		}
		if sim > 0 {
			k := key
			faceMatched = true
			matchedKey = &k
			similarity = sim
			metrics.FaceComparisonsTotal.WithLabelValues("match").Inc()
			break
		}
		metrics.FaceComparisonsTotal.WithLabelValues("no_match").Inc()
	}

	var status string
	switch {
	case faceMatched && locationOK:
		status = statusMatchedInside
	case faceMatched && !locationOK:
		status = statusMatchedOutside
	case !faceMatched && locationOK:
		status = statusUnmatchedInside
	default:
		status = statusUnmatchedOutside
	}

	return &models.ValidationVerdict{
		FaceMatched: faceMatched,
		MatchedWith: matchedKey,
		Similarity:  round2(similarity),
		LocationOK:  locationOK,
		DistanceM:   round2(distance),
		Status:      status,
	}
}

// Save appends a ledger entry. employeeId and date are required; every
// call inserts a new row.
func (s *AttendanceService) Save(ctx context.Context, req *models.SaveAttendanceRequest) (*models.AttendanceEvent, error) {
	if req.EmployeeID == "" || req.Date == "" {
		return nil, apperr.NewValidation("employeeId and date are required")
	}
	return s.ledger.Insert(ctx, &models.AttendanceEvent{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.Status,
	})
}

// List returns the whole ledger.
func (s *AttendanceService) List(ctx context.Context) ([]models.AttendanceEvent, error) {
	return s.ledger.ListAll(ctx)
}
