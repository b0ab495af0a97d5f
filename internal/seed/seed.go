// Package seed holds the fixed fallback dataset served before anything has
// been persisted, and the read-only notice board contents.
package seed

import (
	"context"

	"github.com/kmsol/fabtrack/internal/domain/notice"
	"github.com/kmsol/fabtrack/internal/domain/project"
)

// Provider implements project.FallbackProvider with the built-in example
// dataset. The dataset is only served, never written back to the store.
type Provider struct{}

func (Provider) Projects() []project.Project {
	return Projects()
}

// Board implements notice.Repository over the fixed notice list.
type Board struct{}

func (Board) List(ctx context.Context) ([]notice.Notice, error) {
	return Notices(), nil
}

// Projects returns a fresh copy of the 4-project example dataset.
func Projects() []project.Project {
	return []project.Project{
		{
			ID:           "1",
			CompanyName:  "SHANDONG",
			Country:      "중국",
			PM:           "신경호",
			Stage:        project.StageFATScheduled,
			FATDate:      "2024-10-15",
			DeliveryDate: "2024-12-15",
			Remarks:      "주요 부품 수급 지연 예상",
			Items: []project.ProjectItem{
				{
					ID: "1-1", SerialNumber: "PSM000230", PIC: "김승윤",
					BOMStatus: project.StatusComplete, BOMDate: "2024-09-15",
					DrawingStatus: project.StatusNotStarted, DrawingDate: "2024-10-01",
					ProgramStatus: project.StatusNotStarted, ProgramDate: "2024-10-10",
					TechSpecs: []project.TechnicalSpec{
						{ID: "t1", Content: "전압 사양: 220V 60Hz", IsCompleted: true},
						{ID: "t2", Content: "안전 규격: CE 인증", IsCompleted: false},
					},
				},
				{
					ID: "1-2", SerialNumber: "H2M000291", PIC: "이규빈",
					BOMStatus: project.StatusComplete, BOMDate: "2024-09-20",
					DrawingStatus: project.StatusComplete, DrawingDate: "2024-10-05",
					ProgramStatus: project.StatusNotStarted, ProgramDate: "2024-10-20",
					TechSpecs: []project.TechnicalSpec{},
				},
				{
					ID: "1-3", SerialNumber: "TTM000105", PIC: "박승현",
					BOMStatus: project.StatusComplete, BOMDate: "2024-09-22",
					DrawingStatus: project.StatusNotStarted, DrawingDate: "2024-10-08",
					ProgramStatus: project.StatusNotStarted, ProgramDate: "2024-10-25",
					TechSpecs: []project.TechnicalSpec{},
				},
			},
			History: []project.HistoryLog{
				{ID: "h1", Timestamp: "2024-12-05 14:23", Author: "PM", Message: "FAT 일정 변경"},
			},
		},
		{
			ID:           "2",
			CompanyName:  "HEALTHCARE",
			Country:      "방글라데시",
			PM:           "장홍기",
			Stage:        project.StageFATConfirmed,
			FATDate:      "2024-10-17",
			DeliveryDate: "2024-12-17",
			Remarks:      "",
			Items: []project.ProjectItem{
				{
					ID: "2-1", SerialNumber: "PSM000232", PIC: "김승윤",
					BOMStatus: project.StatusComplete, BOMDate: "2024-09-25",
					DrawingStatus: project.StatusNotStarted, DrawingDate: "2024-10-10",
					ProgramStatus: project.StatusNotStarted, ProgramDate: "2024-10-15",
					TechSpecs: []project.TechnicalSpec{},
				},
				{
					ID: "2-2", SerialNumber: "H2M000293", PIC: "이규빈",
					BOMStatus: project.StatusComplete, BOMDate: "2024-09-28",
					DrawingStatus: project.StatusComplete, DrawingDate: "2024-10-12",
					ProgramStatus: project.StatusNotStarted, ProgramDate: "2024-10-20",
					TechSpecs: []project.TechnicalSpec{},
				},
				{
					ID: "2-3", SerialNumber: "TTM000107", PIC: "박승현",
					BOMStatus: project.StatusComplete, BOMDate: "2024-10-01",
					DrawingStatus: project.StatusNotStarted, DrawingDate: "2024-10-15",
					ProgramStatus: project.StatusNotStarted, ProgramDate: "2024-10-25",
					TechSpecs: []project.TechnicalSpec{},
				},
			},
			History: []project.HistoryLog{},
		},
		{
			ID:           "3",
			CompanyName:  "SHANDONG HUASU",
			Country:      "중국",
			PM:           "김철수",
			Stage:        project.StageFATComplete,
			FATDate:      "2024-12-07",
			DeliveryDate: "2024-12-25",
			Remarks:      "검수일 2일 경과",
			Items: []project.ProjectItem{
				{
					ID: "3-1", SerialNumber: "H2M000291", PIC: "최민수",
					BOMStatus:     project.StatusNotStarted,
					DrawingStatus: project.StatusNotStarted,
					ProgramStatus: project.StatusNotStarted,
					TechSpecs:     []project.TechnicalSpec{},
				},
			},
			History: []project.HistoryLog{},
		},
		{
			ID:           "4",
			CompanyName:  "AUTO PARTS",
			Country:      "인도",
			PM:           "이영희",
			Stage:        project.StageDeliveryConfirmed,
			FATDate:      "2024-11-20",
			DeliveryDate: "2024-12-11",
			Remarks:      "BOM 미출도 (출고 D-5)",
			Items: []project.ProjectItem{
				{
					ID: "4-1", SerialNumber: "H2M000177", PIC: "정수빈",
					BOMStatus:     project.StatusNotStarted,
					DrawingStatus: project.StatusComplete,
					ProgramStatus: project.StatusComplete,
					TechSpecs:     []project.TechnicalSpec{},
				},
				{
					ID: "4-2", SerialNumber: "H2M000285", PIC: "정수빈",
					BOMStatus:     project.StatusComplete,
					DrawingStatus: project.StatusComplete,
					ProgramStatus: project.StatusComplete,
					TechSpecs:     []project.TechnicalSpec{},
				},
				{
					ID: "4-3", SerialNumber: "H2M000292", PIC: "정수빈",
					BOMStatus:     project.StatusComplete,
					DrawingStatus: project.StatusComplete,
					ProgramStatus: project.StatusComplete,
					TechSpecs:     []project.TechnicalSpec{},
				},
			},
			History: []project.HistoryLog{},
		},
	}
}

// Notices returns the fixed notice board contents, newest first.
func Notices() []notice.Notice {
	return []notice.Notice{
		{
			ID:      "n1",
			Title:   "12월 출하 검사 일정 공지",
			Author:  "관리자",
			Date:    "2024-12-02",
			Content: "12월 둘째 주 출하 건은 검사 일정을 앞당겨 진행합니다. 해당 PM은 일정 확인 바랍니다.",
		},
		{
			ID:      "n2",
			Title:   "도면 출도 절차 변경 안내",
			Author:  "설계팀",
			Date:    "2024-11-25",
			Content: "도면 출도 시 기술 사양 체크리스트 확인 후 등록하는 절차로 변경되었습니다.",
		},
		{
			ID:      "n3",
			Title:   "연말 재고 실사 안내",
			Author:  "관리자",
			Date:    "2024-11-18",
			Content: "12월 마지막 주 재고 실사가 예정되어 있습니다. BOM 정리를 미리 완료해 주세요.",
		},
	}
}
