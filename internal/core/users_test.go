package core_test

import (
	"context"
	"errors"
	"fmt"
	"time"
	"usermgmt/internal/core"
	"usermgmt/internal/core/fake"
	"usermgmt/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UserManager", func() {
	var (
		fakeRepo *fake.Repository
		manager  *core.UserManager
		ctx      context.Context
		fakeErr  error
		created  time.Time
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		manager = core.NewUserManager(zap.NewNop().Sugar(), fakeRepo)
		ctx = context.Background()
		fakeErr = fmt.Errorf("failed to create user: %w: %w", repository.ErrPersistence, errors.New("conn refused"))
		created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	})

	Describe("CreateUser", func() {
		var (
			record core.UserRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = manager.CreateUser(ctx, "alice")
		})

		When("the repository saves the user", func() {
			BeforeEach(func() {
				fakeRepo.SaveReturns(repository.User{ID: 1, Username: "alice", CreatedAt: created, UpdatedAt: created}, nil)
			})

			It("should return the stored record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.UserRecord{ID: 1, Username: "alice", CreatedAt: created, UpdatedAt: created}))

				Expect(fakeRepo.SaveCallCount()).To(Equal(1))
				_, username := fakeRepo.SaveArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveReturns(repository.User{}, fakeErr)
			})

			It("should return a persistence error", func() {
				Expect(err).To(MatchError(core.ErrPersistence))
			})
		})
	})

	Describe("UpdateUser", func() {
		var (
			record core.UserRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = manager.UpdateUser(ctx, 1, "alice2")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.UpdateReturns(repository.User{ID: 1, Username: "alice2"}, nil)
			})

			It("should return the updated record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Username).To(Equal("alice2"))
				_, id, username := fakeRepo.UpdateArgsForCall(0)
				Expect(id).To(Equal(int64(1)))
				Expect(username).To(Equal("alice2"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateReturns(repository.User{}, fmt.Errorf("failed to update user: %w", repository.ErrUserNotFound))
			})

			It("should return user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(err).To(MatchError("failed to update user: user not found"))
			})
		})
	})

	Describe("DeleteUser", func() {
		It("should delete through the repository", func() {
			Expect(manager.DeleteUser(ctx, 3)).To(Succeed())
			_, id := fakeRepo.DeleteArgsForCall(0)
			Expect(id).To(Equal(int64(3)))
		})

		It("should surface user not found", func() {
			fakeRepo.DeleteReturns(repository.ErrUserNotFound)
			Expect(manager.DeleteUser(ctx, 3)).To(MatchError(core.ErrUserNotFound))
		})
	})

	Describe("GetUser", func() {
		It("should return the record", func() {
			fakeRepo.RetrieveByIDReturns(repository.User{ID: 4, Username: "dave"}, nil)
			record, err := manager.GetUser(ctx, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(int64(4)))
			Expect(record.Username).To(Equal("dave"))
		})

		It("should surface user not found", func() {
			fakeRepo.RetrieveByIDReturns(repository.User{}, repository.ErrUserNotFound)
			_, err := manager.GetUser(ctx, 4)
			Expect(err).To(MatchError(core.ErrUserNotFound))
		})
	})

	Describe("ListUsers", func() {
		When("users exist", func() {
			BeforeEach(func() {
				fakeRepo.RetrieveAllReturns([]repository.User{
					{ID: 1, Username: "a"},
					{ID: 2, Username: "b"},
				}, nil)
			})

			It("should map every user in order", func() {
				records, err := manager.ListUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal(int64(1)))
				Expect(records[1].Username).To(Equal("b"))
			})
		})

		When("there are no users", func() {
			BeforeEach(func() {
				fakeRepo.RetrieveAllReturns([]repository.User{}, nil)
			})

			It("should return an empty, non-nil slice", func() {
				records, err := manager.ListUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).NotTo(BeNil())
				Expect(records).To(BeEmpty())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.RetrieveAllReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := manager.ListUsers(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserAnalytics", func() {
		var (
			analytics core.Analytics
			err       error
		)

		JustBeforeEach(func() {
			analytics, err = manager.GetUserAnalytics(ctx)
		})

		When("users exist", func() {
			BeforeEach(func() {
				fakeRepo.RetrieveAllReturns([]repository.User{
					{ID: 1, Username: "a"},
					{ID: 2, Username: "ccc"},
					{ID: 3, Username: "bb"},
				}, nil)
			})

			It("should summarize them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(analytics.Summary.TotalUsers).To(Equal(3))
				Expect(analytics.Extremes.LongestName).To(Equal("ccc"))
				Expect(analytics.Extremes.ShortestName).To(Equal("a"))
				Expect(analytics.Extremes.LongestNameLength).To(Equal(3))
				Expect(analytics.Extremes.ShortestNameLength).To(Equal(1))
			})
		})

		When("there are no users", func() {
			It("should return zero values", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(analytics).To(Equal(core.Analytics{}))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.RetrieveAllReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
