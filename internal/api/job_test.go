package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	mockdb "github.com/wsjobs/go-job-board/internal/db/mock"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/jobs"
	"github.com/wsjobs/go-job-board/internal/worker"
	mockwk "github.com/wsjobs/go-job-board/internal/worker/mock"
	"github.com/wsjobs/go-job-board/pkg/slug"
	"github.com/wsjobs/go-job-board/pkg/token"
)

func TestListJobsAPI(t *testing.T) {
	employer, _ := generateRandomEmployer(t)

	plain := generateRandomJobRow(employer)
	featured := generateRandomJobRow(employer)
	featured.IsFeatured = true
	remote := generateRandomJobRow(employer)
	remote.IsRemote = true

	rows := []db.Job{plain, featured, remote}

	testCases := []struct {
		name          string
		query         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			query: "",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var response []jobs.Job
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Len(t, response, 3)
				// featured listings always come first
				require.True(t, response[0].Featured)
			},
		},
		{
			name:  "Filter Remote",
			query: "?remote=true",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var response []jobs.Job
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Len(t, response, 1)
				require.True(t, response[0].Remote)
			},
		},
		{
			name:  "Filter Text No Match",
			query: "?search=zzzznomatch",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var response []jobs.Job
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Empty(t, response)
			},
		},
		{
			name:  "Internal Server Error",
			query: "",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return(nil, sql.ErrConnDone)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			url := "/api/v1/jobs" + tc.query
			req, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestGetJobBySlugAPI(t *testing.T) {
	employer, _ := generateRandomEmployer(t)

	row := generateRandomJobRow(employer)
	row.Title = "Registered Nurse"
	jobSlug := slug.Make(row.Title)

	testCases := []struct {
		name          string
		slug          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			slug: jobSlug,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return([]db.Job{row}, nil)
				store.EXPECT().
					IncrementApplicationsCount(gomock.Any(), gomock.Eq(row.ID)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var response jobs.Job
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Equal(t, row.Title, response.Title)
				require.Equal(t, jobSlug, response.Slug)
			},
		},
		{
			name: "View Counter Failure Still Serves Job",
			slug: jobSlug,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return([]db.Job{row}, nil)
				store.EXPECT().
					IncrementApplicationsCount(gomock.Any(), gomock.Eq(row.ID)).
					Times(1).
					Return(sql.ErrConnDone)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "Not Found",
			slug: "unknown-job",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return([]db.Job{row}, nil)
				store.EXPECT().
					IncrementApplicationsCount(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "Internal Server Error",
			slug: jobSlug,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListOpenJobs(gomock.Any()).
					Times(1).
					Return(nil, sql.ErrConnDone)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/api/v1/jobs/%s", tc.slug)
			req, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestCreateJobAPI(t *testing.T) {
	employer, _ := generateRandomEmployer(t)

	row := generateRandomJobRow(employer)
	row.Title = "Forklift Operator"
	row.Description = "Operate forklifts in a busy distribution centre."

	requestBody := gin.H{
		"title":           row.Title,
		"description":     row.Description,
		"location":        row.Location,
		"type":            "Full-time",
		"salary_min":      row.SalaryMin.Int32,
		"salary_max":      row.SalaryMax.Int32,
		"salary_currency": row.SalaryCurrency.String,
		"categories":      row.Categories,
	}

	testCases := []struct {
		name          string
		body          gin.H
		setupAuth     func(t *testing.T, r *http.Request, maker token.Maker)
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: requestBody,
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetEmployerByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					CreateJob(gomock.Any(), gomock.Any()).
					Times(1).
					Return(row, nil)
				taskPayload := &worker.PayloadSendJobPostedEmail{
					Email:       employer.Email,
					FullName:    employer.FullName,
					JobTitle:    row.Title,
					CompanyName: row.CompanyName,
				}
				distributor.EXPECT().
					DistributeTaskSendJobPostedEmail(gomock.Any(), gomock.Eq(taskPayload), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var response jobs.Job
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Equal(t, row.Title, response.Title)
				require.Equal(t, "Full-time", response.Type)
			},
		},
		{
			name: "Too Many Categories",
			body: gin.H{
				"title":       row.Title,
				"description": row.Description,
				"location":    row.Location,
				"type":        "Full-time",
				"categories":  []string{"Healthcare & Medical", "Retail & Sales", "Hospitality & Tourism", "Trades & Services"},
			},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					CreateJob(gomock.Any(), gomock.Any()).
					Times(0)
				distributor.EXPECT().
					DistributeTaskSendJobPostedEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "Invalid Job Type",
			body: gin.H{
				"title":       row.Title,
				"description": row.Description,
				"location":    row.Location,
				"type":        "Casual",
			},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					CreateJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:      "No Authorization",
			body:      requestBody,
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					CreateJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServer(t, store, distributor, nil)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := "/api/v1/jobs"
			req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, req, server.tokenMaker)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestDeleteJobAPI(t *testing.T) {
	employer, _ := generateRandomEmployer(t)
	otherEmployer, _ := generateRandomEmployer(t)

	row := generateRandomJobRow(employer)

	testCases := []struct {
		name          string
		jobID         string
		setupAuth     func(t *testing.T, r *http.Request, maker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			jobID: row.ID.String(),
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetEmployerByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(row.ID)).
					Times(1).
					Return(row, nil)
				store.EXPECT().
					DeleteJob(gomock.Any(), gomock.Eq(row.ID)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNoContent, recorder.Code)
			},
		},
		{
			name:  "Not Owner",
			jobID: row.ID.String(),
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, otherEmployer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetEmployerByEmail(gomock.Any(), gomock.Eq(otherEmployer.Email)).
					Times(1).
					Return(otherEmployer, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(row.ID)).
					Times(1).
					Return(row, nil)
				store.EXPECT().
					DeleteJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:  "Invalid ID",
			jobID: "not-a-uuid",
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Job Not Found",
			jobID: uuid.New().String(),
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetEmployerByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Job{}, sql.ErrNoRows)
				store.EXPECT().
					DeleteJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/api/v1/jobs/%s", tc.jobID)
			req, err := http.NewRequest(http.MethodDelete, url, nil)
			require.NoError(t, err)

			tc.setupAuth(t, req, server.tokenMaker)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}

func TestSetJobFilledAPI(t *testing.T) {
	employer, _ := generateRandomEmployer(t)
	row := generateRandomJobRow(employer)

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"is_filled": true},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetEmployerByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(row.ID)).
					Times(1).
					Return(row, nil)
				store.EXPECT().
					SetJobFilled(gomock.Any(), gomock.Eq(db.SetJobFilledParams{
						ID:       row.ID,
						IsFilled: true,
					})).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "Missing Flag",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SetJobFilled(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/api/v1/jobs/%s/filled", row.ID)
			req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, req, server.tokenMaker, authorizationTypeBearer, employer.Email, time.Minute)

			server.router.ServeHTTP(recorder, req)

			tc.checkResponse(recorder)
		})
	}
}
