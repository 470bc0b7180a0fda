package state

import (
	"math"

	"github.com/garnizeh/skillswap/internal/mirror"
	"github.com/garnizeh/skillswap/internal/models"
)

// SubmitReview records a review of the session's counterparty and folds
// the score into their running mean rating. Each side of a session can
// review at most once. When the counterparty cannot be resolved (the
// current user is not a participant, or the partner is unknown) the call
// is a no-op rather than an error.
func (s *State) SubmitReview(sessionID string, rating int, comment string) error {
	if s.CurrentUser == nil {
		return ErrNotSignedIn
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	session := s.findSession(sessionID)
	if session == nil {
		return ErrUnknownSession
	}

	partnerID := session.Counterparty(s.CurrentUser.ID)
	if partnerID == "" {
		return nil
	}
	partner := s.findUser(partnerID)
	if partner == nil {
		return nil
	}

	isRequester := session.RequesterID == s.CurrentUser.ID
	if (isRequester && session.RequesterReviewed) || (!isRequester && session.ProviderReviewed) {
		return ErrAlreadyReviewed
	}

	review := models.Review{
		ID:         newID(),
		SessionID:  sessionID,
		FromUserID: s.CurrentUser.ID,
		ToUserID:   partnerID,
		Rating:     rating,
		Comment:    comment,
		Timestamp:  nowMillis(),
	}
	s.Reviews = append(s.Reviews, review)

	// running mean from (rating, count); the review list is never re-scanned
	partner.Rating = round1((partner.Rating*float64(partner.ReviewCount) + float64(rating)) / float64(partner.ReviewCount+1))
	partner.ReviewCount++

	if isRequester {
		session.RequesterReviewed = true
	} else {
		session.ProviderReviewed = true
	}

	s.Notify(partnerID, "New Review Received!", "Someone left you a review. Check your profile.", models.NotifySystem)

	s.enqueue(mirror.Op{Kind: OpSaveReview, Payload: review})
	return nil
}

// round1 rounds to one fractional digit, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
