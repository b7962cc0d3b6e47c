package cmd_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"usermgmt/cmd"
	"usermgmt/internal/core"
	"usermgmt/internal/db"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

var _ = Describe("App", func() {
	var app http.Handler

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

		store, err := db.Open("sqlite", dsn, logger)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(store.Close)

		app, err = cmd.NewApp(logger, store)
		Expect(err).NotTo(HaveOccurred())
	})

	call := func(method, target, body string) (int, envelope) {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(method, target, reader))

		var env envelope
		Expect(json.Unmarshal(w.Body.Bytes(), &env)).To(Succeed())
		return w.Code, env
	}

	createUser := func(username string) core.UserRecord {
		code, env := call("POST", "/api/v1/createUser", fmt.Sprintf(`{"username":%q}`, username))
		Expect(code).To(Equal(http.StatusOK))

		var user core.UserRecord
		Expect(json.Unmarshal(env.Data, &user)).To(Succeed())
		return user
	}

	listUsers := func() []core.UserRecord {
		code, env := call("GET", "/api/v1/users", "")
		Expect(code).To(Equal(http.StatusOK))

		var users []core.UserRecord
		Expect(json.Unmarshal(env.Data, &users)).To(Succeed())
		return users
	}

	It("should carry a user through its whole lifecycle", func() {
		alice := createUser("alice")
		Expect(alice.ID).To(BeNumerically(">", 0))
		Expect(alice.Username).To(Equal("alice"))

		Expect(listUsers()).To(ContainElement(HaveField("ID", alice.ID)))

		code, env := call("GET", fmt.Sprintf("/api/v1/userById/%d", alice.ID), "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Message).To(Equal("Successfully fetched user by id!"))

		code, env = call("PUT", fmt.Sprintf("/api/v1/updateUser/%d", alice.ID), `{"username":"alice2"}`)
		Expect(code).To(Equal(http.StatusOK))
		var updated core.UserRecord
		Expect(json.Unmarshal(env.Data, &updated)).To(Succeed())
		Expect(updated.ID).To(Equal(alice.ID))
		Expect(updated.Username).To(Equal("alice2"))

		code, env = call("GET", fmt.Sprintf("/api/v1/userById/%d", alice.ID), "")
		Expect(code).To(Equal(http.StatusOK))
		var fetched core.UserRecord
		Expect(json.Unmarshal(env.Data, &fetched)).To(Succeed())
		Expect(fetched.Username).To(Equal("alice2"))

		code, env = call("DELETE", fmt.Sprintf("/api/v1/deleteUser/%d", alice.ID), "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Data).To(MatchJSON(fmt.Sprintf(`{"deletedId":%d}`, alice.ID)))

		code, env = call("GET", fmt.Sprintf("/api/v1/userById/%d", alice.ID), "")
		Expect(code).To(Equal(http.StatusInternalServerError))
		Expect(env.Status).To(Equal("Internal Server Error!"))
	})

	It("should fail operations on missing users", func() {
		code, env := call("PUT", "/api/v1/updateUser/999", `{"username":"ghost"}`)
		Expect(code).To(Equal(http.StatusInternalServerError))
		Expect(env.Error).To(ContainSubstring("user not found"))

		code, _ = call("DELETE", "/api/v1/deleteUser/999", "")
		Expect(code).To(Equal(http.StatusInternalServerError))

		code, _ = call("DELETE", "/api/v1/deleteUser/0", "")
		Expect(code).To(Equal(http.StatusInternalServerError))
	})

	It("should reject malformed update ids", func() {
		for _, id := range []string{"abc", "-1"} {
			code, env := call("PUT", "/api/v1/updateUser/"+id, `{"username":"x"}`)
			Expect(code).To(Equal(http.StatusBadRequest))
			Expect(env.Message).To(Equal("Invalid user ID"))
		}
	})

	It("should list exactly the users that were created and not deleted", func() {
		Expect(listUsers()).To(BeEmpty())

		ids := make([]int64, 0, 4)
		for _, name := range []string{"a", "b", "c", "d"} {
			ids = append(ids, createUser(name).ID)
		}
		for _, id := range ids[:2] {
			code, _ := call("DELETE", fmt.Sprintf("/api/v1/deleteUser/%d", id), "")
			Expect(code).To(Equal(http.StatusOK))
		}

		users := listUsers()
		Expect(users).To(HaveLen(2))
		Expect(users[0].Username).To(Equal("c"))
		Expect(users[1].Username).To(Equal("d"))
	})

	It("should accept empty usernames", func() {
		user := createUser("")
		Expect(user.ID).To(BeNumerically(">", 0))
		Expect(user.Username).To(BeEmpty())
	})

	Describe("analytics", func() {
		analytics := func() core.Analytics {
			code, env := call("GET", "/api/v1/analytics", "")
			Expect(code).To(Equal(http.StatusOK))

			var result core.Analytics
			Expect(json.Unmarshal(env.Data, &result)).To(Succeed())
			return result
		}

		It("should report empty extremes without users", func() {
			Expect(analytics()).To(Equal(core.Analytics{}))
		})

		It("should summarize stored usernames", func() {
			for _, name := range []string{"a", "ccc", "bb", ""} {
				createUser(name)
			}

			result := analytics()
			Expect(result.Summary.TotalUsers).To(Equal(3))
			Expect(result.Extremes.LongestName).To(Equal("ccc"))
			Expect(result.Extremes.ShortestName).To(Equal("a"))
		})
	})

	It("should answer health checks", func() {
		code, env := call("GET", "/api/v1/health", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(env.Status).To(Equal("OK"))
	})
})
