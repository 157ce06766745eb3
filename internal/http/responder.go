package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/game-scheduler/internal/application"
)

var (
	errBadRequestBody    = errors.New("無効なリクエスト形式です。")
	errInvalidGameID     = errors.New("無効なゲーム ID です。")
	errInvalidEventID    = errors.New("無効な固定予定 ID です。")
	errInvalidScheduleID = errors.New("無効なスケジュール ID です。")
	errInvalidNotifyID   = errors.New("無効な通知 ID です。")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := localizedStatusMessage(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	switch {
	case errors.Is(err, application.ErrNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "指定されたリソースが見つかりません。"})
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			details := localizeValidationErrors(vErr)
			r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
				Message: "入力内容に誤りがあります。",
				Errors:  details,
			})
			return
		}

		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "error", err, "error_kind", application.ErrorKind(err))
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "サーバー内部でエラーが発生しました。"})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func localizedStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "リクエスト内容が正しくありません。"
	case http.StatusNotFound:
		return "指定されたリソースが見つかりません。"
	case http.StatusUnprocessableEntity:
		return "入力内容に誤りがあります。"
	default:
		return "サーバー内部でエラーが発生しました。"
	}
}

func localizeValidationErrors(vErr *application.ValidationError) map[string]string {
	if vErr == nil || len(vErr.FieldErrors) == 0 {
		return nil
	}

	translated := make(map[string]string, len(vErr.FieldErrors))
	for field, msg := range vErr.FieldErrors {
		translated[field] = translateValidationMessage(msg)
	}
	return translated
}

func translateValidationMessage(message string) string {
	switch message {
	case "title is required":
		return "タイトルは必須です。"
	case "genre is not in the accepted set":
		return "指定されたジャンルは利用できません。"
	case "status is not in the accepted set":
		return "指定されたステータスは利用できません。"
	case "start time must be HH:MM":
		return "開始時刻は HH:MM 形式で指定してください。"
	case "end time must be HH:MM":
		return "終了時刻は HH:MM 形式で指定してください。"
	case "end time must be after start time":
		return "終了時刻は開始時刻より後である必要があります。"
	case "at least one weekday is required for recurring events":
		return "繰り返し予定には曜日を 1 つ以上指定してください。"
	case "weekdays must be in 0..6":
		return "曜日は 0〜6 の範囲で指定してください。"
	case "recurring events cannot carry a specific date":
		return "繰り返し予定に特定日は指定できません。"
	case "a specific date is required for one-off events":
		return "単発予定には特定日を指定してください。"
	case "specific date must be YYYY-MM-DD":
		return "特定日は YYYY-MM-DD 形式で指定してください。"
	case "date must be YYYY-MM-DD":
		return "日付は YYYY-MM-DD 形式で指定してください。"
	case "session would run past midnight":
		return "セッションが深夜 0 時を越えてしまいます。"
	case "schedule is already resolved":
		return "このスケジュールは既に完了またはスキップされています。"
	case "minutes before must be positive":
		return "通知タイミングは正の分数で指定してください。"
	default:
		return message
	}
}

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
