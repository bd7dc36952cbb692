// cmd/client/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	boardv1 "github.com/tanercay/goalgrid/api/proto/board/v1/generated"
	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
)

// Smoke test client: creates a project with two dependent tasks, shows the
// gated transition being rejected, then completes the chain and prints the
// board.
func main() {
	fmt.Println("🚀 GoalGrid smoke test client")

	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	taskClient := taskv1.NewTaskServiceClient(conn)
	boardClient := boardv1.NewBoardServiceClient(conn)

	ownerID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "x-owner-id", ownerID)

	project, err := taskClient.CreateProject(ctx, &taskv1.CreateProjectRequest{
		Name: "Smoke test project",
	})
	if err != nil {
		log.Fatalf("CreateProject failed: %v", err)
	}
	fmt.Printf("✅ Created project %s\n", project.Project.Id)

	first, err := taskClient.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ProjectId: project.Project.Id,
		Name:      "Design schema",
	})
	if err != nil {
		log.Fatalf("CreateTask failed: %v", err)
	}

	second, err := taskClient.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ProjectId:         project.Project.Id,
		Name:              "Implement API",
		DependencyTaskIds: []string{first.Task.Id},
	})
	if err != nil {
		log.Fatalf("CreateTask failed: %v", err)
	}

	// First attempt must fail: the dependency is still open.
	_, err = taskClient.UpdateTaskStatus(ctx, &taskv1.UpdateTaskStatusRequest{
		Id:     second.Task.Id,
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	if err != nil {
		fmt.Printf("⛔ Expected rejection: %v\n", err)
	} else {
		log.Fatal("blocked task started unexpectedly")
	}

	if _, err := taskClient.UpdateTaskStatus(ctx, &taskv1.UpdateTaskStatusRequest{
		Id:     first.Task.Id,
		Status: taskv1.TaskStatus_TASK_STATUS_COMPLETED,
	}); err != nil {
		log.Fatalf("UpdateTaskStatus failed: %v", err)
	}
	fmt.Printf("✅ Completed %q\n", first.Task.Name)

	if _, err := taskClient.UpdateTaskStatus(ctx, &taskv1.UpdateTaskStatusRequest{
		Id:     second.Task.Id,
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	}); err != nil {
		log.Fatalf("UpdateTaskStatus failed: %v", err)
	}
	fmt.Printf("✅ Started %q after its dependency completed\n", second.Task.Name)

	board, err := boardClient.GetBoard(ctx, &boardv1.GetBoardRequest{ProjectId: project.Project.Id})
	if err != nil {
		log.Fatalf("GetBoard failed: %v", err)
	}
	fmt.Printf("📋 Board: to_do=%d in_progress=%d review=%d done=%d\n",
		len(board.ToDo), len(board.InProgress), len(board.Review), len(board.Done))

	stats, err := boardClient.GetBoardStats(ctx, &boardv1.GetBoardStatsRequest{ProjectId: project.Project.Id})
	if err != nil {
		log.Fatalf("GetBoardStats failed: %v", err)
	}
	fmt.Printf("📈 Completion: %.0f%%\n", stats.CompletionPercent)
}
