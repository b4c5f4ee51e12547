package index

// Posting is one document's term frequency for a single term.
type Posting struct {
	DocID int
	TF    float64
}

// PostingList is ordered by ascending DocID.
type PostingList []Posting

// TermEntry pairs a term with its postings.
type TermEntry struct {
	Term     string
	Postings PostingList
}
