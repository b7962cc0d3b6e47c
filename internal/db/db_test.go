package db_test

import (
	"context"
	"database/sql"
	"usermgmt/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		testDB, err = db.NewGormDB(dialector, zap.NewNop().Sugar())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Open", func() {
		It("should reject unknown drivers", func() {
			_, err := db.Open("oracle", "dsn", zap.NewNop().Sugar())
			Expect(err).To(MatchError(db.ErrUnsupportedDriver))
		})
	})

	Describe("Ping", func() {
		It("should reach the database", func() {
			Expect(testDB.Ping(ctx)).To(Succeed())
		})
	})

	Describe("MigrateTable", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should migrate the table successfully", func() {
			Expect(testDB.MigrateTable(&Test{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Create", func() {
		var record Test

		BeforeEach(func() {
			record = Test{Username: "Alice"}
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectCommit()
			})

			It("should populate the assigned id", func() {
				Expect(testDB.Create(ctx, &record)).To(Succeed())
				Expect(record.ID).To(Equal(uint(7)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.Create(ctx, &record)
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("Update", func() {
		When("the row exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
					WithArgs("Bob", 3).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should update the column by primary key", func() {
				Expect(testDB.Update(ctx, &Test{ID: 3, Username: "Alice"}, "username", "Bob")).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row is affected", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
					WithArgs("Bob", 3).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound without inserting", func() {
				err := testDB.Update(ctx, &Test{ID: 3, Username: "Alice"}, "username", "Bob")
				Expect(err).To(MatchError(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the statement fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "tests"`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.Update(ctx, &Test{ID: 3}, "username", "Bob")
				Expect(err).To(MatchError(ContainSubstring("update record")))
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("Delete", func() {
		When("the row exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE "tests"\."id" = \$1$`).
					WithArgs(3).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should delete it", func() {
				Expect(testDB.Delete(ctx, &Test{ID: 3})).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row is affected", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests".*`).
					WithArgs(4).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				Expect(testDB.Delete(ctx, &Test{ID: 4})).To(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id = \$1.*`).
					WithArgs(9, 1).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "id", 9, &result)
				Expect(err).To(MatchError(ContainSubstring(`getting record by "id"`)))
			})
		})
	})

	Describe("GetAll", func() {
		When("records exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests" ORDER BY id$`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Bob"))
			})

			It("should return all records in order", func() {
				var results []Test
				err := testDB.GetAll(ctx, "id", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(results[1].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAll(ctx, "id", &results)
				Expect(err).To(MatchError(ContainSubstring("getting all records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
