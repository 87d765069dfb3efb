package clickhouse

import (
	"time"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

func (s *RepositorySuite) TestInsertAttemptsSkipDuplicates() {
	first := []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
		newAttempt("sale-1", "tx-b", model.AttemptInvalidPow),
	}

	inserted, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, first)
	s.Require().NoError(err)
	s.Equal(2, inserted)

	// Overlapping re-scan: only the new row lands.
	second := []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-b", model.AttemptInvalidPow),
		newAttempt("sale-1", "tx-c", model.AttemptValid),
	}
	inserted, err = s.repo.InsertAttemptsSkipDuplicates(s.testCtx, second)
	s.Require().NoError(err)
	s.Equal(1, inserted)
	s.Equal(uint64(3), s.countRows("raffle_attempts"))

	// The same txid under another sale is a distinct attempt.
	inserted, err = s.repo.InsertAttemptsSkipDuplicates(s.testCtx, []model.PurchaseAttempt{
		newAttempt("sale-2", "tx-a", model.AttemptValid),
	})
	s.Require().NoError(err)
	s.Equal(1, inserted)
}

func (s *RepositorySuite) TestAttemptsBelowFinality() {
	attempts := []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
		newAttempt("sale-1", "tx-b", model.AttemptValid),
		newAttempt("sale-1", "tx-c", model.AttemptValid),
	}
	_, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, attempts)
	s.Require().NoError(err)

	// tx-a crossed finality, tx-b is accepted but shallow, tx-c untracked.
	deep := attempts[0]
	deep.Accepted = true
	deep.AcceptingBlock = "blk-1"
	deep.Confirmations = 15
	s.Require().NoError(s.repo.UpdateAttemptAcceptance(s.testCtx, deep))

	shallow := attempts[1]
	shallow.Accepted = true
	shallow.AcceptingBlock = "blk-2"
	shallow.Confirmations = 3
	s.Require().NoError(s.repo.UpdateAttemptAcceptance(s.testCtx, shallow))

	below, err := s.repo.AttemptsBelowFinality(s.testCtx, "sale-1", 10)
	s.Require().NoError(err)
	s.Require().Len(below, 2)
	s.Equal("tx-b", below[0].TxID)
	s.True(below[0].Accepted)
	s.Equal("tx-c", below[1].TxID)
	s.False(below[1].Accepted)
}

func (s *RepositorySuite) TestAcceptedValidAttempts() {
	attempts := []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
		newAttempt("sale-1", "tx-b", model.AttemptValidFallback),
		newAttempt("sale-1", "tx-c", model.AttemptInvalidPow),
		newAttempt("sale-1", "tx-d", model.AttemptValid),
	}
	_, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, attempts)
	s.Require().NoError(err)

	weight := uint64(777)
	for _, txid := range []string{"tx-a", "tx-b", "tx-c"} {
		update := newAttempt("sale-1", txid, model.AttemptValid)
		update.Accepted = true
		update.AcceptingBlock = "blk-1"
		update.FinalityWeight = &weight
		update.Confirmations = 5
		s.Require().NoError(s.repo.UpdateAttemptAcceptance(s.testCtx, update))
	}

	// tx-c is accepted but invalid, tx-d is valid but unaccepted.
	accepted, err := s.repo.AcceptedValidAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(accepted, 2)
	s.Equal("tx-a", accepted[0].TxID)
	s.Equal("tx-b", accepted[1].TxID)
	s.Require().NotNil(accepted[0].FinalityWeight)
	s.Equal(weight, *accepted[0].FinalityWeight)
}

func (s *RepositorySuite) TestRanksAndAcceptanceDoNotClobberEachOther() {
	_, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
	})
	s.Require().NoError(err)

	weight := uint64(42)
	update := newAttempt("sale-1", "tx-a", model.AttemptValid)
	update.Accepted = true
	update.AcceptingBlock = "blk-1"
	update.FinalityWeight = &weight
	update.Confirmations = 12
	s.Require().NoError(s.repo.UpdateAttemptAcceptance(s.testCtx, update))

	provisional, final := uint32(1), uint32(1)
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-a", &provisional, &final))

	// A later acceptance write must not erase the ranks. Versions are
	// millisecond-resolved, so give the second write its own tick.
	time.Sleep(5 * time.Millisecond)
	update.Confirmations = 20
	s.Require().NoError(s.repo.UpdateAttemptAcceptance(s.testCtx, update))

	got, err := s.repo.AcceptedValidAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(uint64(20), got[0].Confirmations)
	s.Require().NotNil(got[0].ProvisionalRank)
	s.Equal(provisional, *got[0].ProvisionalRank)
	s.Require().NotNil(got[0].FinalRank)
	s.Equal(final, *got[0].FinalRank)
}

func (s *RepositorySuite) TestFinalRankedAttemptsOrdering() {
	attempts := []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
		newAttempt("sale-1", "tx-b", model.AttemptValid),
		newAttempt("sale-1", "tx-c", model.AttemptValid),
	}
	_, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, attempts)
	s.Require().NoError(err)

	rank := func(v uint32) *uint32 { return &v }
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-a", rank(3), rank(2)))
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-b", rank(1), rank(1)))
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-c", rank(2), nil))

	final, err := s.repo.FinalRankedAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(final, 2)
	s.Equal("tx-b", final[0].TxID)
	s.Equal("tx-a", final[1].TxID)

	// Clearing a final rank drops the attempt from the listing.
	time.Sleep(5 * time.Millisecond)
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-a", rank(3), nil))
	final, err = s.repo.FinalRankedAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(final, 1)
	s.Equal("tx-b", final[0].TxID)
}

func (s *RepositorySuite) TestRankedAttemptsTracksClearedRanks() {
	attempts := []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
		newAttempt("sale-1", "tx-b", model.AttemptValid),
		newAttempt("sale-1", "tx-c", model.AttemptValid),
	}
	_, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, attempts)
	s.Require().NoError(err)

	rank := func(v uint32) *uint32 { return &v }
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-a", rank(1), rank(1)))
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-b", rank(2), nil))

	// tx-c never ranked, so only the two ranked attempts show.
	ranked, err := s.repo.RankedAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(ranked, 2)
	s.Equal("tx-a", ranked[0].TxID)
	s.Equal("tx-b", ranked[1].TxID)

	// Clearing both ranks drops the attempt from the listing.
	time.Sleep(5 * time.Millisecond)
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-b", nil, nil))
	ranked, err = s.repo.RankedAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(ranked, 1)
	s.Equal("tx-a", ranked[0].TxID)
}

func (s *RepositorySuite) TestAttemptUpdatedAtAdvancesWithWrites() {
	_, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
	})
	s.Require().NoError(err)

	update := newAttempt("sale-1", "tx-a", model.AttemptValid)
	update.Accepted = true
	update.AcceptingBlock = "blk-1"
	update.Confirmations = 4
	time.Sleep(5 * time.Millisecond)
	s.Require().NoError(s.repo.UpdateAttemptAcceptance(s.testCtx, update))

	got, err := s.repo.AcceptedValidAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	afterAcceptance := got[0].UpdatedAt
	s.True(afterAcceptance.After(got[0].CreatedAt))

	provisional := uint32(1)
	time.Sleep(5 * time.Millisecond)
	s.Require().NoError(s.repo.UpdateAttemptRanks(s.testCtx, "sale-1", "tx-a", &provisional, nil))

	got, err = s.repo.AcceptedValidAttempts(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.True(got[0].UpdatedAt.After(afterAcceptance))
}

func (s *RepositorySuite) TestCountAttemptsByStatus() {
	attempts := []model.PurchaseAttempt{
		newAttempt("sale-1", "tx-a", model.AttemptValid),
		newAttempt("sale-1", "tx-b", model.AttemptValid),
		newAttempt("sale-1", "tx-c", model.AttemptInvalidPow),
		newAttempt("sale-1", "tx-d", model.AttemptInvalidUnderpaid),
		newAttempt("sale-2", "tx-e", model.AttemptValid),
	}
	_, err := s.repo.InsertAttemptsSkipDuplicates(s.testCtx, attempts)
	s.Require().NoError(err)

	counts, err := s.repo.CountAttemptsByStatus(s.testCtx, "sale-1")
	s.Require().NoError(err)
	s.Equal(uint64(2), counts[model.AttemptValid])
	s.Equal(uint64(1), counts[model.AttemptInvalidPow])
	s.Equal(uint64(1), counts[model.AttemptInvalidUnderpaid])
	s.Len(counts, 3)
}
