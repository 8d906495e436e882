package claim

import "fmt"

// Session states for one claim attempt. Terminal states are not persisted;
// a session lives only as long as the dialog driving it.
const (
	StateAwaitingAnswers = "awaiting_answers"
	StateVerifying       = "verifying"
	StateVerified        = "verified"
	StateRejected        = "rejected"
)

// Session tracks a single claim attempt against one found item:
// AwaitingAnswers -> Verifying -> Verified | Rejected, with Reset leading
// from either terminal state back to AwaitingAnswers.
type Session struct {
	svc         *ClaimService
	foundItemID string
	state       string
	answers     map[string]string
	result      VerificationResult
}

// NewSession starts a claim attempt for the given found item
func NewSession(svc *ClaimService, foundItemID string) *Session {
	return &Session{
		svc:         svc,
		foundItemID: foundItemID,
		state:       StateAwaitingAnswers,
		answers:     make(map[string]string),
	}
}

// State returns the current session state
func (s *Session) State() string {
	return s.state
}

// Result returns the verification outcome of a terminal session
func (s *Session) Result() VerificationResult {
	return s.result
}

// SetAnswer records the claimant's answer to one security question
func (s *Session) SetAnswer(questionID, answer string) error {
	if s.state != StateAwaitingAnswers {
		return fmt.Errorf("cannot answer in state %q", s.state)
	}
	s.answers[questionID] = answer
	return nil
}

// Verify runs the claim check and moves the session to a terminal state.
// Validation failures (missing answers) keep the session in AwaitingAnswers
// so the claimant can fill in the gap and retry.
func (s *Session) Verify() (VerificationResult, error) {
	if s.state != StateAwaitingAnswers {
		return VerificationResult{}, fmt.Errorf("cannot verify in state %q", s.state)
	}

	s.state = StateVerifying
	result, err := s.svc.VerifyClaim(s.foundItemID, s.answers)
	if err != nil {
		s.state = StateAwaitingAnswers
		return VerificationResult{}, err
	}

	s.result = result
	if result.Success {
		s.state = StateVerified
	} else {
		s.state = StateRejected
	}
	return result, nil
}

// Reset clears a terminal session back to AwaitingAnswers
func (s *Session) Reset() {
	s.state = StateAwaitingAnswers
	s.answers = make(map[string]string)
	s.result = VerificationResult{}
}
