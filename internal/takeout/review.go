package takeout

// Star rating labels as they appear in Takeout exports.
const (
	RatingOne   = "ONE"
	RatingTwo   = "TWO"
	RatingThree = "THREE"
	RatingFour  = "FOUR"
	RatingFive  = "FIVE"
)

// StarRatings lists the five valid rating labels in ascending order.
var StarRatings = []string{RatingOne, RatingTwo, RatingThree, RatingFour, RatingFive}

// ValidStarRating reports whether s is one of the five rating labels.
func ValidStarRating(s string) bool {
	for _, r := range StarRatings {
		if s == r {
			return true
		}
	}
	return false
}

// Reviewer holds the author sub-record of a review.
type Reviewer struct {
	DisplayName     string `json:"displayName,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// Reply holds the business owner's reply to a review.
type Reply struct {
	Comment    string `json:"comment,omitempty"`
	UpdateTime string `json:"updateTime,omitempty"`
}

// Review is a single Business Profile review as exported by Takeout.
// Every field is optional on disk; absent fields decode to zero values
// and the accessor methods supply the documented defaults.
type Review struct {
	Name        string   `json:"name,omitempty"`
	ReviewID    string   `json:"reviewId,omitempty"`
	Reviewer    Reviewer `json:"reviewer,omitempty"`
	StarRating  string   `json:"starRating,omitempty"`
	Comment     string   `json:"comment,omitempty"`
	CreateTime  string   `json:"createTime,omitempty"`
	UpdateTime  string   `json:"updateTime,omitempty"`
	ReviewReply *Reply   `json:"reviewReply,omitempty"`
}

// GroupID returns a key identifying the review for aggregation purposes:
// the resource name, else the review ID, else a fixed sentinel. The value
// is never shown to the user.
func (r Review) GroupID() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ReviewID != "" {
		return r.ReviewID
	}
	return "unknown"
}

// ExportID returns the identifier written to CSV exports: the review ID,
// else the resource name, else empty.
func (r Review) ExportID() string {
	if r.ReviewID != "" {
		return r.ReviewID
	}
	return r.Name
}

// ReviewerName returns the reviewer display name, defaulting to "Anonymous".
func (r Review) ReviewerName() string {
	if r.Reviewer.DisplayName == "" {
		return "Anonymous"
	}
	return r.Reviewer.DisplayName
}

// ReplyComment returns the owner reply text, or empty when there is no reply.
func (r Review) ReplyComment() string {
	if r.ReviewReply == nil {
		return ""
	}
	return r.ReviewReply.Comment
}
