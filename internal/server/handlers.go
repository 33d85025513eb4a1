package server

import (
	"net/http"
	"time"

	"github.com/mmynk/fairshare/internal/calculator"
	"github.com/mmynk/fairshare/internal/models"
	"github.com/mmynk/fairshare/internal/service"
)

// Amounts cross the API as strings ("12.34") so clients cannot smuggle
// float artifacts past validation; responses return them as numbers already
// rounded to cents.

type createGroupRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type memberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type groupResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CreatedAt int64            `json:"created_at"`
	Members   []memberResponse `json:"members,omitempty"`
}

type addMembersRequest struct {
	Names []string `json:"names"`
}

type expenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	PayerID     string `json:"payer_id"`
	Date        string `json:"date"`
}

type expenseResponse struct {
	ID          string  `json:"id"`
	GroupID     string  `json:"group_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	PayerID     string  `json:"payer_id"`
	Date        string  `json:"date"`
}

type splitResponse struct {
	MemberID string  `json:"member_id"`
	Owed     float64 `json:"owed"`
}

type balanceResponse struct {
	MemberID   string  `json:"member_id"`
	MemberName string  `json:"member_name"`
	Paid       float64 `json:"paid"`
	Net        float64 `json:"net"`
}

type balanceSheetResponse struct {
	TotalSpent  float64           `json:"total_spent"`
	MemberCount int               `json:"member_count"`
	FairShare   float64           `json:"fair_share"`
	Balances    []balanceResponse `json:"balances"`
}

type transferResponse struct {
	FromID   string  `json:"from_id"`
	FromName string  `json:"from_name"`
	ToID     string  `json:"to_id"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

type settlementRequest struct {
	PayerID    string `json:"payer_id"`
	ReceiverID string `json:"receiver_id"`
	Amount     string `json:"amount"`
	Note       string `json:"note"`
}

type settlementResponse struct {
	ID         string  `json:"id"`
	GroupID    string  `json:"group_id"`
	PayerID    string  `json:"payer_id"`
	ReceiverID string  `json:"receiver_id"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note,omitempty"`
	CreatedAt  int64   `json:"created_at"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Amount:      e.Amount,
		PayerID:     e.PayerID,
		Date:        e.Date,
	}
}

func toMemberResponses(members []models.Member) []memberResponse {
	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = memberResponse{ID: m.ID, Name: m.Name}
	}
	return out
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	group, members, err := s.svc.CreateGroup(r.Context(), req.Name, req.Members)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, groupResponse{
		ID:        group.ID,
		Name:      group.Name,
		CreatedAt: group.CreatedAt,
		Members:   toMemberResponses(members),
	})
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.svc.ListGroups(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]groupResponse, len(groups))
	for i, g := range groups {
		out[i] = groupResponse{ID: g.ID, Name: g.Name, CreatedAt: g.CreatedAt}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.svc.GetGroup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	members, err := s.svc.GetGroupMembers(r.Context(), group.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, groupResponse{
		ID:        group.ID,
		Name:      group.Name,
		CreatedAt: group.CreatedAt,
		Members:   toMemberResponses(members),
	})
}

func (s *Server) handleAddMembers(w http.ResponseWriter, r *http.Request) {
	var req addMembersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	members, err := s.svc.AddMembers(r.Context(), r.PathValue("id"), req.Names)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMemberResponses(members))
}

func (s *Server) handleGetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.svc.GetGroupMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponses(members))
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	err := s.svc.RemoveMember(r.Context(), r.PathValue("id"), r.PathValue("memberID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// expenseParams validates an expense request body into service params.
// An omitted date defaults to today.
func expenseParams(groupID string, req expenseRequest) (service.ExpenseParams, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return service.ExpenseParams{}, err
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return service.ExpenseParams{
		GroupID:     groupID,
		Description: req.Description,
		Amount:      amount,
		PayerID:     req.PayerID,
		Date:        date,
	}, nil
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params, err := expenseParams(r.PathValue("id"), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := s.svc.AddExpense(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (s *Server) handleGetExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.svc.GetGroupExpenses(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i := range expenses {
		out[i] = toExpenseResponse(&expenses[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params, err := expenseParams("", req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := s.svc.UpdateExpense(r.Context(), r.PathValue("id"), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(expense))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetExpenseSplits(w http.ResponseWriter, r *http.Request) {
	splits, err := s.svc.GetExpenseSplits(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]splitResponse, len(splits))
	for i, sp := range splits {
		out[i] = splitResponse{MemberID: sp.MemberID, Owed: sp.Owed}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetBalances(w http.ResponseWriter, r *http.Request) {
	sheet, err := s.svc.ComputeBalances(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := balanceSheetResponse{
		TotalSpent:  sheet.TotalSpent,
		MemberCount: sheet.MemberCount,
		FairShare:   sheet.FairShare,
		Balances:    make([]balanceResponse, len(sheet.Balances)),
	}
	for i, b := range sheet.Balances {
		resp.Balances[i] = balanceResponse{
			MemberID:   b.MemberID,
			MemberName: b.MemberName,
			Paid:       b.Paid,
			Net:        b.Net,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlanSettlements(w http.ResponseWriter, r *http.Request) {
	plan, err := s.svc.PlanSettlements(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransferResponses(plan))
}

func toTransferResponses(plan []calculator.Transfer) []transferResponse {
	out := make([]transferResponse, len(plan))
	for i, t := range plan {
		out[i] = transferResponse{
			FromID:   t.FromID,
			FromName: t.FromName,
			ToID:     t.ToID,
			ToName:   t.ToName,
			Amount:   t.Amount,
		}
	}
	return out
}

func (s *Server) handleRecordSettlement(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	settlement, err := s.svc.RecordSettlement(r.Context(), service.SettlementParams{
		GroupID:    r.PathValue("id"),
		PayerID:    req.PayerID,
		ReceiverID: req.ReceiverID,
		Amount:     amount,
		Note:       req.Note,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSettlementResponse(settlement))
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := s.svc.ListSettlements(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]settlementResponse, len(settlements))
	for i, st := range settlements {
		out[i] = toSettlementResponse(st)
	}
	writeJSON(w, http.StatusOK, out)
}

func toSettlementResponse(st *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:         st.ID,
		GroupID:    st.GroupID,
		PayerID:    st.PayerID,
		ReceiverID: st.ReceiverID,
		Amount:     st.Amount,
		Note:       st.Note,
		CreatedAt:  st.CreatedAt,
	}
}
